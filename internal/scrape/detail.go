package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/jsonld"
	"jobscrape-engine/internal/scrape/util"
)

// Enrich fills a card record from its detail page. Two passes, in order of
// trust: the embedded JobPosting structured-data block first (authoritative
// for the override-priority fields), then CSS cascades for everything the
// block omitted. Outside the override set, detail data never clobbers a
// field the card already populated.
func Enrich(rec *domain.JobRecord, htmlText string, p Profile) {
	if rec == nil || strings.TrimSpace(htmlText) == "" {
		return
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return
	}

	if posting := findPosting(doc); posting != nil {
		applyPosting(rec, posting, p)
	}

	d := p.Detail
	fillIfAbsent(&rec.Description, selectText(doc.Selection, d.Description, true))
	fillIfAbsent(&rec.WorkType, selectText(doc.Selection, d.WorkType, false))
	fillIfAbsent(&rec.WorkArrangement, selectText(doc.Selection, d.WorkArrangement, false))
	fillIfAbsent(&rec.Salary, selectText(doc.Selection, d.Salary, false))
	fillIfAbsent(&rec.SeniorityLevel, selectText(doc.Selection, d.Seniority, false))
	fillIfAbsent(&rec.ApplicationMethod, selectText(doc.Selection, d.ApplicationMethod, false))
	fillIfAbsent(&rec.CompanyDescription, selectText(doc.Selection, d.CompanyDescription, true))

	if rec.PostedAt == "" {
		if raw := selectText(doc.Selection, d.Posted, false); raw != "" {
			rec.PostedAt = util.NormalizePostedAt(raw)
		}
	}

	if apply := selectHref(doc.Selection, d.ApplyLink, p.RootURL); apply != "" {
		// Detail pages know the real apply target; the card only had the
		// posting URL as a stand-in.
		rec.ApplyURL = apply
	}
	fillIfAbsent(&rec.CompanyURL, selectHref(doc.Selection, d.CompanyLink, p.RootURL))
	fillIfAbsent(&rec.CompanyLogoURL, selectImage(doc.Selection, d.Logo, d.LogoAttrs, p.RootURL))

	fillIfAbsent(&rec.Requirements, SectionByHeading(doc, d.RequirementsHeadings))
	fillIfAbsent(&rec.Benefits, SectionByHeading(doc, d.BenefitsHeadings))

	if rec.ID == "" {
		rec.ID = util.InferJobID(rec.JobURL, p.IDPatterns)
	}
}

// findPosting scans ld+json script tags and returns the first JobPosting.
func findPosting(doc *goquery.Document) *jsonld.JobPosting {
	var found *jsonld.JobPosting
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		postings := jsonld.DecodePostings([]byte(s.Text()))
		if len(postings) == 0 {
			return true
		}
		found = &postings[0]
		return false
	})
	return found
}

// applyPosting merges structured data into the record. Override-priority
// fields are replaced outright; everything else is fill-if-absent.
func applyPosting(rec *domain.JobRecord, posting *jsonld.JobPosting, p Profile) {
	setField := func(dst *string, field, val string) {
		val = strings.TrimSpace(val)
		if val == "" {
			return
		}
		if p.overrides(field) || *dst == "" {
			*dst = val
		}
	}

	setField(&rec.Title, "title", util.CleanText(posting.Title))
	if posting.HiringOrganization != nil {
		org := posting.HiringOrganization
		setField(&rec.Company, "company", util.CleanText(org.Name))
		fillIfAbsent(&rec.CompanyURL, util.FirstNonEmpty(org.SameAs, org.URL))
		fillIfAbsent(&rec.CompanyLogoURL, org.Logo.URL)
	}
	setField(&rec.Description, "description", descriptionText(posting.Description))

	if rec.PostedAt == "" && posting.DatePosted != "" {
		rec.PostedAt = util.NormalizePostedAt(posting.DatePosted)
	}
	fillIfAbsent(&rec.WorkType, util.CleanText(strings.Join(posting.EmploymentType, ", ")))
	fillIfAbsent(&rec.Salary, util.FormatSalary(posting.BaseSalary))
	fillIfAbsent(&rec.Location, util.FormatLocations(posting.JobLocation))
	if posting.Identifier != nil {
		fillIfAbsent(&rec.ID, strings.TrimSpace(posting.Identifier.Value))
	}
	if posting.DirectApply {
		fillIfAbsent(&rec.ApplicationMethod, "direct")
	}
}

// descriptionText renders the HTML fragment JobPosting descriptions carry
// into normalized multi-line text.
func descriptionText(fragment string) string {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return util.CleanMultiline(fragment)
	}
	return util.CleanMultiline(blockText(doc.Selection))
}

func fillIfAbsent(dst *string, val string) {
	if *dst != "" {
		return
	}
	if val = strings.TrimSpace(val); val != "" {
		*dst = val
	}
}
