package util

import (
	"strings"

	"jobscrape-engine/internal/jsonld"
)

// FormatLocations flattens structured job locations into one display string.
// Each place joins its address parts with ", ", falling back to the place
// name when no address exists. Duplicate renderings are dropped, first-seen
// order preserved.
func FormatLocations(places jsonld.Places) string {
	seen := map[string]bool{}
	var out []string
	for _, p := range places {
		s := formatPlace(p)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return strings.Join(out, ", ")
}

func formatPlace(p jsonld.Place) string {
	if p.Address != nil {
		var parts []string
		for _, part := range []string{p.Address.Locality, p.Address.Region, p.Address.PostalCode, p.Address.Country} {
			if part = CleanText(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	return CleanText(p.Name)
}
