package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func TestPostedDate_Relative(t *testing.T) {
	tests := []struct {
		raw      string
		expected time.Time
	}{
		{"Today", testNow},
		{"Just posted", testNow},
		{"Yesterday", testNow.AddDate(0, 0, -1)},
		{"3 days ago", testNow.AddDate(0, 0, -3)},
		{"2 weeks ago", testNow.AddDate(0, 0, -14)},
		{"5 hours ago", testNow.Add(-5 * time.Hour)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, PostedDate(tt.raw, testNow), "input %q", tt.raw)
	}
}

func TestPostedDate_AbsoluteLayouts(t *testing.T) {
	expected := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"2026-08-01", "01/08/2026", "1 August 2026", "1 Aug 2026", "Aug 1, 2026"} {
		assert.Equal(t, expected, PostedDate(raw, testNow), "input %q", raw)
	}
}

func TestPostedDate_Unparseable(t *testing.T) {
	for _, raw := range []string{"", "recently", "some day"} {
		assert.True(t, PostedDate(raw, testNow).IsZero(), "input %q", raw)
	}
}

func TestDeadline(t *testing.T) {
	published := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, published.Add(DeadlineWindow), Deadline(published))
}
