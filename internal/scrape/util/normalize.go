package util

import "strings"

// CleanText collapses whitespace runs (including NBSP) to single spaces and
// trims the ends. Idempotent.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// CleanMultiline normalizes each line independently, drops blank lines, and
// rejoins with newlines. Paragraph structure survives, decorative whitespace
// does not. Idempotent.
func CleanMultiline(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = CleanText(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// FirstNonEmpty returns the first value with non-blank content, trimmed.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}
