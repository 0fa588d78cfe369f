package filters

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Known last-date layouts, tried in order; the first successful parse wins.
var lastDateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"02-Jan-2006",
	"02 Jan 2006",
	"2006.01.02",
}

// Fallback: a 4-digit year, 1-2 digit month and 1-2 digit day extracted by
// position from any digit run resembling YYYY?MM?DD.
var lastDateDigitsRe = regexp.MustCompile(`(\d{4})\D?(\d{1,2})\D?(\d{1,2})`)

// IsStillOpen reports whether the last-eligible-date text names today or a
// later day. Unknown collapses to "not open": empty or unparseable input is
// treated as closed.
func IsStillOpen(lastDate string) bool {
	return IsStillOpenAt(lastDate, time.Now())
}

// IsStillOpenAt is IsStillOpen evaluated against an explicit clock.
func IsStillOpenAt(lastDate string, now time.Time) bool {
	d, ok := parseLastDate(strings.TrimSpace(lastDate))
	if !ok {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(today)
}

func parseLastDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range lastDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}

	m := lastDateDigitsRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 31 becomes Mar 2); reject that
	// rather than inventing a calendar date.
	if d.Day() != day || d.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return d, true
}
