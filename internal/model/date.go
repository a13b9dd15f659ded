package model

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ctorDateRe = regexp.MustCompile(`^Date\((\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)

var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// ParseFeedDate parses a feed date value: either a textual date or the
// constructor-like encoding `Date(year,month,day)` where month is zero-based.
// Both forms resolve to the same calendar date.
func ParseFeedDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if m := ctorDateRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC), true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
