package util

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Absolute layouts tried in order before any relative-phrase parsing.
// Layouts without a zone are interpreted as UTC.
var absoluteLayouts = []struct {
	layout  string
	hasZone bool
}{
	{"2006-01-02T15:04:05Z07:00", true},
	{"2006-01-02T15:04:05-0700", true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02", false},
}

var (
	relativeRegex = regexp.MustCompile(`(\d+)\s*(minute|minutes|min|mins|hour|hours|hr|hrs|day|days|week|weeks|month|months|year|years)\b`)
	withinRegex   = regexp.MustCompile(`within the past\s*(\d+)\s*(day|days|week|weeks)`)
)

// NormalizePostedAt turns posted-date hints into an ISO-8601 timestamp with
// second precision. Values are tried in order; the first parseable one wins.
// When nothing parses, the first non-blank value is returned trimmed so the
// original text is never lost.
func NormalizePostedAt(values ...string) string {
	for _, v := range values {
		if ts := parsePostedTimestamp(v); ts != "" {
			return ts
		}
	}
	return FirstNonEmpty(values...)
}

func parsePostedTimestamp(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	for _, l := range absoluteLayouts {
		t, err := time.Parse(l.layout, text)
		if err != nil {
			continue
		}
		if !l.hasZone {
			t = t.UTC()
		}
		return t.Truncate(time.Second).Format(time.RFC3339)
	}

	normalized := strings.ToLower(text)
	now := time.Now().UTC()

	switch normalized {
	case "new", "just posted":
		return now.Truncate(time.Second).Format(time.RFC3339)
	case "within the past 24 hours", "past 24 hours":
		return now.Add(-12 * time.Hour).Truncate(time.Second).Format(time.RFC3339)
	}
	if strings.Contains(normalized, "yesterday") {
		return now.Add(-24 * time.Hour).Truncate(time.Second).Format(time.RFC3339)
	}

	// "within the past N days/weeks" resolves to the midpoint of the window,
	// the expected value when nothing else is known about the posting time.
	if m := withinRegex.FindStringSubmatch(normalized); m != nil {
		n, _ := strconv.Atoi(m[1])
		if d := durationForUnit(m[2], n); d > 0 {
			return now.Add(-d / 2).Truncate(time.Second).Format(time.RFC3339)
		}
	}

	if m := relativeRegex.FindStringSubmatch(normalized); m != nil {
		n, _ := strconv.Atoi(m[1])
		if d := durationForUnit(m[2], n); d > 0 {
			return now.Add(-d).Truncate(time.Second).Format(time.RFC3339)
		}
	}

	return ""
}

// durationForUnit maps a unit word to a duration. Months and years use
// 30/365-day approximations rather than calendar arithmetic.
func durationForUnit(unit string, n int) time.Duration {
	switch strings.ToLower(unit) {
	case "minute", "minutes", "min", "mins":
		return time.Duration(n) * time.Minute
	case "hour", "hours", "hr", "hrs":
		return time.Duration(n) * time.Hour
	case "day", "days":
		return time.Duration(n) * 24 * time.Hour
	case "week", "weeks":
		return time.Duration(n) * 7 * 24 * time.Hour
	case "month", "months":
		return time.Duration(n) * 30 * 24 * time.Hour
	case "year", "years":
		return time.Duration(n) * 365 * 24 * time.Hour
	}
	return 0
}
