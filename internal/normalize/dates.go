package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DeadlineWindow is added to the published date when a listing carries no
// explicit closing date.
const DeadlineWindow = 30 * 24 * time.Hour

var relativeAgo = regexp.MustCompile(`(\d+)\s*(day|week|hour)s?\s+ago`)

// dateLayouts are tried in order for absolute date strings.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2 January 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// PostedDate parses a raw posted-date string relative to now. Returns the
// zero time when nothing parses; callers default to now in that case.
func PostedDate(raw string, now time.Time) time.Time {
	cleaned := strings.ToLower(collapseWhitespace(raw))
	if cleaned == "" {
		return time.Time{}
	}

	switch {
	case strings.Contains(cleaned, "today"), strings.Contains(cleaned, "just posted"):
		return now
	case strings.Contains(cleaned, "yesterday"):
		return now.AddDate(0, 0, -1)
	}

	if m := relativeAgo.FindStringSubmatch(cleaned); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			switch m[2] {
			case "hour":
				return now.Add(-time.Duration(n) * time.Hour)
			case "day":
				return now.AddDate(0, 0, -n)
			case "week":
				return now.AddDate(0, 0, -7*n)
			}
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, collapseWhitespace(raw)); err == nil {
			return t
		}
	}

	return time.Time{}
}

// Deadline returns the default application deadline for a published date.
func Deadline(published time.Time) time.Time {
	return published.Add(DeadlineWindow)
}
