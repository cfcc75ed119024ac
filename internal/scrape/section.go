package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"jobscrape-engine/internal/scrape/util"
)

var headingTags = map[string]bool{"h2": true, "h3": true, "h4": true}

// SectionByHeading finds a section by its heading text: scan h2/h3/h4 in
// document order, and for a heading whose normalized text equals one of the
// keywords (case-insensitive), collect sibling content until the next
// heading. The first matching heading with actual content wins; "" when
// nothing matches.
func SectionByHeading(doc *goquery.Document, headings []string) string {
	if len(headings) == 0 {
		return ""
	}
	want := map[string]bool{}
	for _, h := range headings {
		want[strings.ToLower(util.CleanText(h))] = true
	}

	var result string
	doc.Find("h2, h3, h4").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		text := strings.ToLower(util.CleanText(h.Text()))
		if !want[text] {
			return true
		}

		var parts []string
		for sib := h.Get(0).NextSibling; sib != nil; sib = sib.NextSibling {
			if sib.Type == html.ElementNode && headingTags[sib.Data] {
				break
			}
			var chunk string
			switch sib.Type {
			case html.TextNode:
				chunk = util.CleanMultiline(sib.Data)
			case html.ElementNode:
				chunk = util.CleanMultiline(blockText(goquery.NewDocumentFromNode(sib).Selection))
			}
			if chunk != "" {
				parts = append(parts, chunk)
			}
		}
		if len(parts) == 0 {
			// matched heading with no body; keep scanning
			return true
		}
		result = strings.Join(parts, "\n")
		return false
	})
	return result
}
