package domain

// Status is the moderation state of a comment.
type Status string

const (
	StatusHold     Status = "hold"
	StatusApproved Status = "approved"
	StatusSpam     Status = "spam"
	StatusTrash    Status = "trash"
)

// ParseStatus canonicalizes a client-supplied status. Legacy encodings are
// accepted on input ("approve", "1" for approved; "0" for hold) but the
// canonical form is always what gets stored and returned.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "hold", "0":
		return StatusHold, true
	case "approved", "approve", "1":
		return StatusApproved, true
	case "spam":
		return StatusSpam, true
	case "trash":
		return StatusTrash, true
	default:
		return "", false
	}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusHold, StatusApproved, StatusSpam, StatusTrash:
		return true
	default:
		return false
	}
}

// Approved reports whether the comment is publicly visible.
func (s Status) Approved() bool {
	return s == StatusApproved
}

// LegacyFlag is the historical numeric encoding of the approval state,
// exposed at the interface boundary only.
func (s Status) LegacyFlag() int {
	if s.Approved() {
		return 1
	}
	return 0
}

// ApprovedDelta is the adjustment to the parent post's visible-comment
// counter when a comment moves between statuses. Transitions that neither
// enter nor leave the approved state are counter-neutral, so a status
// round-trip always nets to zero.
func ApprovedDelta(old, new Status) int {
	switch {
	case old.Approved() == new.Approved():
		return 0
	case new.Approved():
		return 1
	default:
		return -1
	}
}
