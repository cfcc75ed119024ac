package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobscrape-engine/internal/domain"
)

func detailProfile() Profile {
	p := testProfile()
	p.OverrideFields = []string{"title", "company", "description"}
	p.Detail = DetailSelectors{
		Description:          []string{"div.description"},
		WorkType:             []string{"span.work-type"},
		Salary:               []string{"span.pay"},
		Posted:               []string{"span.posted"},
		Seniority:            []string{"span.seniority"},
		CompanyDescription:   []string{"div.about-company"},
		ApplyLink:            []string{"a.apply"},
		RequirementsHeadings: []string{"Requirements", "What you'll need"},
		BenefitsHeadings:     []string{"Benefits"},
	}
	return p
}

func TestEnrichStructuredDataOverridesCardFields(t *testing.T) {
	rec := &domain.JobRecord{
		Title:   "Card Title",
		Company: "Card Co",
		Salary:  "$1 from card",
	}
	page := `<html><head>
	<script type="application/ld+json">{
		"@type": "JobPosting",
		"title": "Authoritative Title",
		"description": "<p>First para.</p><p>Second para.</p>",
		"datePosted": "2024-04-02",
		"employmentType": "FULL_TIME",
		"hiringOrganization": {"name": "Authoritative Co", "sameAs": "https://authco.example"},
		"baseSalary": {"currency": "AUD", "value": {"minValue": 80000, "maxValue": 100000, "unitText": "YEAR"}}
	}</script>
	</head><body></body></html>`

	Enrich(rec, page, detailProfile())

	assert.Equal(t, "Authoritative Title", rec.Title)
	assert.Equal(t, "Authoritative Co", rec.Company)
	assert.Equal(t, "First para.\nSecond para.", rec.Description)
	// salary is outside the override set: the card value stays
	assert.Equal(t, "$1 from card", rec.Salary)
	assert.Equal(t, "2024-04-02T00:00:00Z", rec.PostedAt)
	assert.Equal(t, "FULL_TIME", rec.WorkType)
	assert.Equal(t, "https://authco.example", rec.CompanyURL)
}

func TestEnrichCSSFillsOnlyAbsentFields(t *testing.T) {
	rec := &domain.JobRecord{Title: "Card Title", Company: "Acme"}
	page := `<html><body>
	<span class="work-type">Contract</span>
	<span class="pay">$900/day</span>
	<span class="seniority">Mid-Senior level</span>
	<div class="description">Do the <b>work</b>.</div>
	<div class="about-company">We make anvils.</div>
	</body></html>`

	Enrich(rec, page, detailProfile())

	// no structured data and no CSS title selector: card fields survive
	assert.Equal(t, "Card Title", rec.Title)
	assert.Equal(t, "Acme", rec.Company)
	assert.Equal(t, "Contract", rec.WorkType)
	assert.Equal(t, "$900/day", rec.Salary)
	assert.Equal(t, "Mid-Senior level", rec.SeniorityLevel)
	assert.Equal(t, "Do the work.", rec.Description)
	assert.Equal(t, "We make anvils.", rec.CompanyDescription)
}

func TestEnrichStructuredDataFillsAbsentCompany(t *testing.T) {
	rec := &domain.JobRecord{Title: "T"}
	p := detailProfile()
	p.OverrideFields = nil // fill-if-absent everywhere
	page := `<html><body><script type="application/ld+json">{
		"@type": "JobPosting", "title": "Other", "hiringOrganization": {"name": "Filled Co"}
	}</script></body></html>`

	Enrich(rec, page, p)

	assert.Equal(t, "T", rec.Title)
	assert.Equal(t, "Filled Co", rec.Company)
}

func TestEnrichApplyLinkReplacesCardURL(t *testing.T) {
	rec := &domain.JobRecord{Title: "T", JobURL: "https://jobs.example/job/1", ApplyURL: "https://jobs.example/job/1"}
	page := `<html><body><a class="apply" href="https://ats.example/apply/1">Apply</a></body></html>`

	Enrich(rec, page, detailProfile())

	assert.Equal(t, "https://jobs.example/job/1", rec.JobURL)
	assert.Equal(t, "https://ats.example/apply/1", rec.ApplyURL)
}

func TestEnrichPostedAtFallbackAndID(t *testing.T) {
	rec := &domain.JobRecord{Title: "T", JobURL: "https://jobs.example/job/31337"}
	page := `<html><body><span class="posted">2024-06-01</span></body></html>`

	Enrich(rec, page, detailProfile())

	assert.Equal(t, "2024-06-01T00:00:00Z", rec.PostedAt)
	assert.Equal(t, "31337", rec.ID)
}

func TestEnrichSections(t *testing.T) {
	rec := &domain.JobRecord{Title: "T"}
	page := `<html><body>
	<h2>About the role</h2><p>Stuff.</p>
	<h2>What you'll need</h2><ul><li>Go</li><li>SQL</li></ul>
	<h2>Benefits</h2><p>Free coffee.</p><p>Gym.</p>
	<h2>How to apply</h2><p>Click apply.</p>
	</body></html>`

	Enrich(rec, page, detailProfile())

	assert.Equal(t, "Go\nSQL", rec.Requirements)
	assert.Equal(t, "Free coffee.\nGym.", rec.Benefits)
}

func TestEnrichNoOpOnEmptyInput(t *testing.T) {
	rec := &domain.JobRecord{Title: "T", Company: "C"}
	Enrich(rec, "", detailProfile())
	assert.Equal(t, "T", rec.Title)
	assert.Equal(t, "C", rec.Company)

	Enrich(nil, "<html></html>", detailProfile())
}
