package domain

import (
	"time"
)

const (
	CommentStatusOpen   = "open"
	CommentStatusClosed = "closed"
)

// Post is the minimal projection of the content item a comment attaches to.
// Posts are owned by the content layer; this API only resolves references,
// checks whether new comments are accepted, and maintains the approved
// comment counter.
type Post struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	CommentStatus string    `json:"comment_status" db:"comment_status"`
	CommentCount  int64     `json:"comment_count" db:"comment_count"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// CommentsOpen reports whether the post accepts new comments.
func (p *Post) CommentsOpen() bool {
	return p.CommentStatus == CommentStatusOpen
}
