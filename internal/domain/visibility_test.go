package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanSeeComment(t *testing.T) {
	anon := AnonymousCaller()
	subscriber := Caller{UserID: 7, Role: RoleSubscriber}
	editor := Caller{UserID: 2, Role: RoleEditor}

	approved := &Comment{ID: 1, AuthorID: 9, Status: StatusApproved}
	held := &Comment{ID: 2, AuthorID: 7, Status: StatusHold}
	spam := &Comment{ID: 3, AuthorID: 9, Status: StatusSpam}

	assert.True(t, CanSeeComment(anon, approved))
	assert.False(t, CanSeeComment(anon, held))
	assert.False(t, CanSeeComment(anon, spam))

	// The author sees their own unapproved comment; other comments stay
	// hidden until approved.
	assert.True(t, CanSeeComment(subscriber, held))
	assert.False(t, CanSeeComment(subscriber, spam))

	assert.True(t, CanSeeComment(editor, held))
	assert.True(t, CanSeeComment(editor, spam))
}

func TestProjectComment(t *testing.T) {
	date := time.Date(2014, 11, 7, 10, 14, 25, 0, time.Local)
	comment := &Comment{
		ID:              42,
		PostID:          7,
		ParentID:        0,
		AuthorID:        3,
		AuthorName:      "Disco Stu",
		AuthorEmail:     "stu@stusdisco.com",
		AuthorURL:       "http://stusdisco.com",
		AuthorIP:        "127.0.0.1",
		AuthorUserAgent: "curl/8.0",
		Content:         "Disco Stu doesn't advertise.",
		Karma:           5,
		Status:          StatusApproved,
		Type:            CommentTypeComment,
		Date:            date,
		DateGMT:         date.UTC(),
	}

	t.Run("view omits moderation fields", func(t *testing.T) {
		resp := ProjectComment(comment, "http://example.com", ContextView)

		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, int64(7), resp.Post)
		assert.Equal(t, "2014-11-07T10:14:25", resp.Date)
		assert.Equal(t, "http://example.com/?p=7#comment-42", resp.Link)
		assert.Contains(t, resp.Content.Rendered, "<p>")

		assert.Empty(t, resp.AuthorEmail)
		assert.Empty(t, resp.AuthorIP)
		assert.Empty(t, resp.AuthorUserAgent)
		assert.Empty(t, resp.DateGMT)
		assert.Empty(t, resp.Content.Raw)
		assert.Nil(t, resp.Karma)
	})

	t.Run("edit carries the full record", func(t *testing.T) {
		resp := ProjectComment(comment, "http://example.com", ContextEdit)

		assert.Equal(t, "stu@stusdisco.com", resp.AuthorEmail)
		assert.Equal(t, "127.0.0.1", resp.AuthorIP)
		assert.Equal(t, "curl/8.0", resp.AuthorUserAgent)
		assert.Equal(t, comment.Content, resp.Content.Raw)
		assert.NotEmpty(t, resp.DateGMT)
		if assert.NotNil(t, resp.Karma) {
			assert.Equal(t, 5, *resp.Karma)
		}
	})
}

func TestRenderContent(t *testing.T) {
	rendered := RenderContent("first\n\nsecond line\nwrapped")

	assert.Contains(t, rendered, "<p>first</p>")
	assert.Contains(t, rendered, "<p>second line<br />\nwrapped</p>")
}

func TestParseRequestContext(t *testing.T) {
	rctx, ok := ParseRequestContext("")
	assert.True(t, ok)
	assert.Equal(t, ContextView, rctx)

	rctx, ok = ParseRequestContext("edit")
	assert.True(t, ok)
	assert.Equal(t, ContextEdit, rctx)

	_, ok = ParseRequestContext("embed")
	assert.False(t, ok)
}
