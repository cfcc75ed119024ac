package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"jobscrape-engine/internal/scrape/util"
)

// selectText is the cascade evaluator used for every field: try each
// selector in order, return the first non-empty cleaned text. Multiline
// fields keep paragraph breaks, single-line fields collapse to one line.
func selectText(s *goquery.Selection, selectors []string, multiline bool) string {
	for _, sel := range selectors {
		node := s.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		var text string
		if multiline {
			text = util.CleanMultiline(blockText(node))
		} else {
			text = util.CleanText(node.Text())
		}
		if text != "" {
			return text
		}
	}
	return ""
}

// selectHref cascades over anchor selectors and resolves the first non-empty
// href against the site root.
func selectHref(s *goquery.Selection, selectors []string, root string) string {
	for _, sel := range selectors {
		href, ok := s.Find(sel).First().Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			continue
		}
		if abs := util.ResolveURL(root, href); abs != "" {
			return abs
		}
	}
	return ""
}

// selectImage cascades over image selectors, then over source attributes
// within the match, so lazy-loaded logos resolve before placeholder src.
func selectImage(s *goquery.Selection, selectors, attrs []string, root string) string {
	for _, sel := range selectors {
		img := s.Find(sel).First()
		if img.Length() == 0 {
			continue
		}
		for _, attr := range attrs {
			if src, ok := img.Attr(attr); ok && strings.TrimSpace(src) != "" {
				return util.ResolveURL(root, src)
			}
		}
	}
	return ""
}

var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"ul": true, "ol": true, "li": true, "table": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true,
}

// blockText extracts text the way a reader sees it: inline content runs
// together, block elements and <br> produce line breaks. goquery's Text()
// would glue paragraphs into one word-soup line.
func blockText(s *goquery.Selection) string {
	var b strings.Builder
	for _, n := range s.Nodes {
		writeNodeText(&b, n)
	}
	return b.String()
}

func writeNodeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		switch n.Data {
		case "br":
			b.WriteString("\n")
			return
		case "script", "style":
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNodeText(b, c)
		}
		if blockTags[n.Data] {
			b.WriteString("\n")
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNodeText(b, c)
		}
	}
}
