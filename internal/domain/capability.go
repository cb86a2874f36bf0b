package domain

// Caller is the identity an operation runs as. The zero value is the
// anonymous caller; every handler threads it explicitly, there is no
// ambient "current user".
type Caller struct {
	UserID int64
	Role   string
}

func AnonymousCaller() Caller {
	return Caller{}
}

func (c Caller) IsAnonymous() bool {
	return c.UserID == 0
}

// CanModerate reports whether the caller's role carries moderation rights.
func (c Caller) CanModerate() bool {
	return c.Role == RoleAdministrator || c.Role == RoleEditor
}

// Owns reports whether the caller is the authenticated author of the comment.
// Anonymous callers own nothing, including comments with author id 0.
func (c Caller) Owns(comment *Comment) bool {
	return comment != nil && !c.IsAnonymous() && comment.AuthorID == c.UserID
}

// CapabilitySet is what a caller may do with respect to a target comment
// (or a collection when the comment is absent).
type CapabilitySet struct {
	ReadPublic  bool
	ReadPrivate bool
	Create      bool
	Edit        bool
	Delete      bool
	Moderate    bool
}

// ResolveCapabilities derives the caller's capability set from role and
// ownership. It is total and side-effect free: a privileged role gets the
// full set, everyone else gets public read, create on an open post, and
// private read/edit/delete only on their own comments.
func ResolveCapabilities(caller Caller, comment *Comment, post *Post) CapabilitySet {
	if caller.CanModerate() {
		return CapabilitySet{
			ReadPublic:  true,
			ReadPrivate: true,
			Create:      true,
			Edit:        true,
			Delete:      true,
			Moderate:    true,
		}
	}

	caps := CapabilitySet{ReadPublic: true}
	if post != nil && post.CommentsOpen() {
		caps.Create = true
	}
	if caller.Owns(comment) {
		caps.ReadPrivate = true
		caps.Edit = true
		caps.Delete = true
	}
	return caps
}
