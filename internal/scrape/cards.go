package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/net/html"

	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/scrape/util"
)

// ExtractCards parses a search results page into partial job records, one
// per card. Empty or unparseable input yields an empty slice, never an
// error: a blank page is just a page with no jobs on it.
//
// Card containers are located by trying every strategy in order and
// unioning the matches. A card matched by more than one strategy (layouts
// overlap during site migrations) is taken once, at its first-seen
// position.
func ExtractCards(htmlText string, p Profile) []*domain.JobRecord {
	if strings.TrimSpace(htmlText) == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil
	}

	seen := mapset.NewThreadUnsafeSet[*html.Node]()
	var cards []*goquery.Selection
	collect := func(sel string) {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			n := s.Get(0)
			if !seen.Add(n) {
				return
			}
			cards = append(cards, s)
		})
	}

	for _, strategy := range p.Card.Strategies {
		collect(strategy)
	}
	if len(cards) == 0 && p.Card.Fallback != "" {
		collect(p.Card.Fallback)
	}

	var out []*domain.JobRecord
	for _, card := range cards {
		if rec := parseCard(card, p); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

// parseCard extracts the search-page fields from one card. A card whose
// title cascade comes up empty is skipped entirely.
func parseCard(card *goquery.Selection, p Profile) *domain.JobRecord {
	title := selectText(card, p.Card.Title, false)
	if title == "" {
		return nil
	}

	rec := &domain.JobRecord{
		Title:           title,
		Source:          p.Name,
		Company:         selectText(card, p.Card.Company, false),
		Location:        selectText(card, p.Card.Location, false),
		WorkArrangement: selectText(card, p.Card.WorkArrangement, false),
		Salary:          selectText(card, p.Card.Salary, false),
		Summary:         selectText(card, p.Card.Summary, false),
	}

	if jobURL := selectHref(card, p.Card.Link, p.RootURL); jobURL != "" {
		jobURL = util.CanonicalJobURL(jobURL)
		rec.JobURL = jobURL
		rec.ApplyURL = jobURL
	}

	for _, attr := range p.Card.IDAttrs {
		if v, ok := card.Attr(attr); ok && strings.TrimSpace(v) != "" {
			rec.ID = strings.TrimSpace(v)
			break
		}
	}
	if rec.ID == "" {
		rec.ID = util.InferJobID(rec.JobURL, p.IDPatterns)
	}

	// The machine-readable datetime attribute beats human text when a
	// <time> element exists; otherwise fall back to the listing-date
	// cascade.
	if t := card.Find("time").First(); t.Length() > 0 {
		datetime, _ := t.Attr("datetime")
		titleAttr, _ := t.Attr("title")
		rec.PostedAt = util.NormalizePostedAt(datetime, titleAttr, util.CleanText(t.Text()))
	}
	if rec.PostedAt == "" {
		if raw := selectText(card, p.Card.ListingDate, false); raw != "" {
			rec.PostedAt = util.NormalizePostedAt(raw)
		}
	}

	rec.CompanyURL = selectHref(card, p.Card.CompanyLink, p.RootURL)
	rec.CompanyLogoURL = selectImage(card, p.Card.Logo, p.Card.LogoAttrs, p.RootURL)

	return rec
}
