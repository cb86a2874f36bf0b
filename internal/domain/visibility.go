package domain

import (
	"fmt"
	"strings"
)

// RequestContext selects the projection of comment fields a response carries.
type RequestContext string

const (
	ContextView RequestContext = "view"
	ContextEdit RequestContext = "edit"
)

// ParseRequestContext defaults to the view projection.
func ParseRequestContext(s string) (RequestContext, bool) {
	switch s {
	case "", "view":
		return ContextView, true
	case "edit":
		return ContextEdit, true
	default:
		return "", false
	}
}

// CanSeeComment decides per-comment visibility: approved comments are public,
// everything else is visible only to a moderator or the comment's
// authenticated author.
func CanSeeComment(caller Caller, comment *Comment) bool {
	if comment.Status.Approved() {
		return true
	}
	return caller.CanModerate() || caller.Owns(comment)
}

// CanUseEditContext decides whether the caller may request the edit
// projection of a specific comment.
func CanUseEditContext(caller Caller, comment *Comment) bool {
	return caller.CanModerate() || caller.Owns(comment)
}

type ContentField struct {
	Rendered string `json:"rendered"`
	Raw      string `json:"raw,omitempty"`
}

// CommentResponse is the wire shape of a comment. Edit-projection fields are
// omitted entirely from view responses, never blanked.
type CommentResponse struct {
	ID         int64        `json:"id"`
	Post       int64        `json:"post"`
	Parent     int64        `json:"parent"`
	Author     int64        `json:"author"`
	AuthorName string       `json:"author_name"`
	AuthorURL  string       `json:"author_url"`
	Content    ContentField `json:"content"`
	Date       string       `json:"date"`
	Link       string       `json:"link"`
	Status     Status       `json:"status"`
	Type       string       `json:"type"`

	AuthorEmail     string `json:"author_email,omitempty"`
	AuthorIP        string `json:"author_ip,omitempty"`
	AuthorUserAgent string `json:"author_user_agent,omitempty"`
	DateGMT         string `json:"date_gmt,omitempty"`
	Karma           *int   `json:"karma,omitempty"`
}

// ProjectComment shapes a comment for the requested context. Entitlement is
// the caller's problem; by the time a projection is built the policy checks
// have already passed.
func ProjectComment(comment *Comment, siteURL string, rctx RequestContext) CommentResponse {
	resp := CommentResponse{
		ID:         comment.ID,
		Post:       comment.PostID,
		Parent:     comment.ParentID,
		Author:     comment.AuthorID,
		AuthorName: comment.AuthorName,
		AuthorURL:  comment.AuthorURL,
		Content:    ContentField{Rendered: RenderContent(comment.Content)},
		Date:       FormatFloatingTime(comment.Date),
		Link:       CommentLink(siteURL, comment),
		Status:     comment.Status,
		Type:       comment.Type,
	}

	if rctx == ContextEdit {
		resp.AuthorEmail = comment.AuthorEmail
		resp.AuthorIP = comment.AuthorIP
		resp.AuthorUserAgent = comment.AuthorUserAgent
		resp.DateGMT = FormatFloatingTime(comment.DateGMT)
		resp.Content.Raw = comment.Content
		karma := comment.Karma
		resp.Karma = &karma
	}

	return resp
}

// RenderContent produces the display form of raw comment text. Real
// rendering belongs to the templating collaborator; this is the paragraph
// wrapping applied on the way out.
func RenderContent(raw string) string {
	paragraphs := strings.Split(strings.TrimSpace(raw), "\n\n")
	var b strings.Builder
	for _, p := range paragraphs {
		if p == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(p, "\n", "<br />\n"))
		b.WriteString("</p>\n")
	}
	return b.String()
}

// CommentLink is the public permalink of a comment on its post.
func CommentLink(siteURL string, comment *Comment) string {
	return fmt.Sprintf("%s/?p=%d#comment-%d", strings.TrimRight(siteURL, "/"), comment.PostID, comment.ID)
}
