package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCapabilities_Moderator(t *testing.T) {
	admin := Caller{UserID: 1, Role: RoleAdministrator}

	caps := ResolveCapabilities(admin, nil, nil)

	assert.True(t, caps.Moderate)
	assert.True(t, caps.ReadPrivate)
	assert.True(t, caps.Edit)
	assert.True(t, caps.Delete)
	// The full set is unconditional, even on a closed post.
	caps = ResolveCapabilities(admin, nil, &Post{CommentStatus: CommentStatusClosed})
	assert.True(t, caps.Create)
}

func TestResolveCapabilities_Anonymous(t *testing.T) {
	anon := AnonymousCaller()
	openPost := &Post{ID: 1, CommentStatus: CommentStatusOpen}
	closedPost := &Post{ID: 2, CommentStatus: CommentStatusClosed}

	caps := ResolveCapabilities(anon, nil, openPost)
	assert.True(t, caps.ReadPublic)
	assert.True(t, caps.Create)
	assert.False(t, caps.Moderate)
	assert.False(t, caps.Edit)

	caps = ResolveCapabilities(anon, nil, closedPost)
	assert.False(t, caps.Create)

	// A guest comment with author id 0 is not "owned" by the anonymous caller.
	guestComment := &Comment{ID: 5, AuthorID: 0}
	caps = ResolveCapabilities(anon, guestComment, nil)
	assert.False(t, caps.ReadPrivate)
	assert.False(t, caps.Edit)
	assert.False(t, caps.Delete)
}

func TestResolveCapabilities_Ownership(t *testing.T) {
	subscriber := Caller{UserID: 7, Role: RoleSubscriber}
	own := &Comment{ID: 1, AuthorID: 7}
	other := &Comment{ID: 2, AuthorID: 9}

	caps := ResolveCapabilities(subscriber, own, nil)
	assert.True(t, caps.ReadPrivate)
	assert.True(t, caps.Edit)
	assert.True(t, caps.Delete)
	assert.False(t, caps.Moderate)

	caps = ResolveCapabilities(subscriber, other, nil)
	assert.False(t, caps.ReadPrivate)
	assert.False(t, caps.Edit)
	assert.False(t, caps.Delete)
}

func TestUserHasRole(t *testing.T) {
	editor := &User{Role: RoleEditor}

	assert.True(t, editor.HasRole(RoleSubscriber))
	assert.True(t, editor.HasRole(RoleEditor))
	assert.False(t, editor.HasRole(RoleAdministrator))
	assert.False(t, editor.HasRole("owner"))
}
