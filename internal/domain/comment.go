package domain

import (
	"time"
)

const (
	CommentTypeComment = "comment"

	// FloatingTimeLayout is the ISO-8601 form without a zone offset used on
	// the wire; date/date_gmt are a floating local/UTC pair derived from one
	// authoritative instant.
	FloatingTimeLayout = "2006-01-02T15:04:05"
)

type Comment struct {
	ID              int64     `json:"id" db:"id"`
	PostID          int64     `json:"post" db:"post_id"`
	ParentID        int64     `json:"parent" db:"parent_id"`
	AuthorID        int64     `json:"author" db:"author_id"`
	AuthorName      string    `json:"author_name" db:"author_name"`
	AuthorEmail     string    `json:"author_email" db:"author_email"`
	AuthorURL       string    `json:"author_url" db:"author_url"`
	AuthorIP        string    `json:"author_ip" db:"author_ip"`
	AuthorUserAgent string    `json:"author_user_agent" db:"author_user_agent"`
	Content         string    `json:"content" db:"content"`
	Karma           int       `json:"karma" db:"karma"`
	Status          Status    `json:"status" db:"status"`
	Type            string    `json:"type" db:"type"`
	Date            time.Time `json:"date" db:"date"`
	DateGMT         time.Time `json:"date_gmt" db:"date_gmt"`
}

type CreateCommentInput struct {
	Post        int64  `json:"post"`
	Parent      int64  `json:"parent"`
	Author      *int64 `json:"author"`
	AuthorName  string `json:"author_name" validate:"omitempty,max=255"`
	AuthorEmail string `json:"author_email" validate:"omitempty,email"`
	AuthorURL   string `json:"author_url"`
	Content     string `json:"content" validate:"required,min=1"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

type UpdateCommentInput struct {
	Content     *string `json:"content,omitempty"`
	AuthorName  *string `json:"author_name,omitempty"`
	AuthorEmail *string `json:"author_email,omitempty" validate:"omitempty,email"`
	AuthorURL   *string `json:"author_url,omitempty"`
	Status      *string `json:"status,omitempty"`
	Karma       *int    `json:"karma,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// DeleteResult confirms a delete: Trashed reports the reversible path,
// Deleted the permanent one.
type DeleteResult struct {
	Deleted  bool            `json:"deleted"`
	Trashed  bool            `json:"trashed"`
	Previous CommentResponse `json:"previous"`
}

// ParseFloatingTime interprets a wire timestamp as site-local time.
func ParseFloatingTime(s string) (time.Time, error) {
	return time.ParseInLocation(FloatingTimeLayout, s, time.Local)
}

func FormatFloatingTime(t time.Time) string {
	return t.Format(FloatingTimeLayout)
}

// ListCommentsParams is the filter set accepted by the list operation.
type ListCommentsParams struct {
	Post    int64
	Status  string
	Author  int64
	Search  string
	Order   string
	OrderBy string
	PaginationParams
}

// StatusAll widens the status filter to every moderation state; it is only
// honored for callers holding moderation rights.
const StatusAll = "all"

var listOrderColumns = map[string]string{
	"date":  "date_gmt",
	"id":    "id",
	"karma": "karma",
}

// Validate canonicalizes the filter set, failing with a validation error
// that names the offending parameter.
func (p *ListCommentsParams) Validate() *Error {
	if p.Status == "" {
		p.Status = string(StatusApproved)
	} else if p.Status != StatusAll {
		status, ok := ParseStatus(p.Status)
		if !ok {
			return NewInvalidParam("status")
		}
		p.Status = string(status)
	}

	if p.Order == "" {
		p.Order = "desc"
	}
	if p.Order != "asc" && p.Order != "desc" {
		return NewInvalidParam("order")
	}

	if p.OrderBy == "" {
		p.OrderBy = "date"
	}
	if _, ok := listOrderColumns[p.OrderBy]; !ok {
		return NewInvalidParam("orderby")
	}

	if p.Page < 0 {
		return NewInvalidParam("page")
	}
	if p.PageSize < 0 || p.PageSize > 100 {
		return NewInvalidParam("per_page")
	}
	p.PaginationParams.Validate()

	return nil
}

// OrderColumn is the storage column backing the requested ordering. Only
// meaningful after Validate.
func (p *ListCommentsParams) OrderColumn() string {
	return listOrderColumns[p.OrderBy]
}
