package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]struct {
		in   string
		want Status
		ok   bool
	}{
		"canonical hold":     {"hold", StatusHold, true},
		"canonical approved": {"approved", StatusApproved, true},
		"legacy approve":     {"approve", StatusApproved, true},
		"legacy numeric 1":   {"1", StatusApproved, true},
		"legacy numeric 0":   {"0", StatusHold, true},
		"spam":               {"spam", StatusSpam, true},
		"trash":              {"trash", StatusTrash, true},
		"unknown":            {"published", "", false},
		"empty":              {"", "", false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseStatus(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatusLegacyFlag(t *testing.T) {
	assert.Equal(t, 1, StatusApproved.LegacyFlag())
	assert.Equal(t, 0, StatusHold.LegacyFlag())
	assert.Equal(t, 0, StatusSpam.LegacyFlag())
	assert.Equal(t, 0, StatusTrash.LegacyFlag())
}

func TestApprovedDelta(t *testing.T) {
	assert.Equal(t, 1, ApprovedDelta(StatusHold, StatusApproved))
	assert.Equal(t, -1, ApprovedDelta(StatusApproved, StatusSpam))
	assert.Equal(t, 0, ApprovedDelta(StatusHold, StatusTrash))
	assert.Equal(t, 0, ApprovedDelta(StatusApproved, StatusApproved))
}

func TestApprovedDeltaRoundTrip(t *testing.T) {
	// Approving and then restoring any original status must net to zero on
	// the post counter.
	for _, original := range []Status{StatusHold, StatusApproved, StatusSpam, StatusTrash} {
		total := ApprovedDelta(original, StatusApproved) + ApprovedDelta(StatusApproved, original)
		assert.Equal(t, 0, total, "round trip from %s", original)
	}
}
