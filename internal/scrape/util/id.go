package util

import "regexp"

// InferJobID applies URL identifier patterns in order and returns the first
// captured group, or "" when no pattern matches.
func InferJobID(rawURL string, patterns []*regexp.Regexp) string {
	if rawURL == "" {
		return ""
	}
	for _, p := range patterns {
		if m := p.FindStringSubmatch(rawURL); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}
