package sites

import (
	"net/url"
	"regexp"

	"jobscrape-engine/internal/fetch"
	"jobscrape-engine/internal/scrape"
)

var linkedInIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/jobs/view/(\d+)`),
	regexp.MustCompile(`currentJobId=(\d+)`),
	regexp.MustCompile(`jobId=(\d+)`),
}

// LinkedIn profiles the public (unauthenticated) LinkedIn jobs search.
func LinkedIn() scrape.Profile {
	return scrape.Profile{
		Name:        "LinkedIn",
		RootURL:     "https://www.linkedin.com",
		SearchPath:  "/jobs/search",
		JobsPerPage: 25,

		KeywordParam:  "keywords",
		LocationParam: "location",
		PageParam:     "start",
		Pagination:    scrape.ResultOffset,
		RecencyParam:  "f_TPR",
		Recency:       scrape.RecencySeconds,
		ExtraParams:   url.Values{"refresh": {"true"}},

		Card: scrape.CardSelectors{
			// The result-list <li> wraps the card div, so it must not sit in
			// the strategy list alongside the div selectors: both would match
			// and the same card would come out twice.
			Strategies: []string{
				"div.base-card",
				"div.job-search-card",
			},
			Fallback: "ul.jobs-search__results-list li",

			Title: []string{
				"h3.base-search-card__title",
				"h3.job-search-card__title",
				"a.job-card-list__title",
			},
			Company: []string{
				"h4.base-search-card__subtitle",
				"a.job-search-card__subtitle",
				"span.job-card-container__primary-description",
			},
			Location: []string{
				"span.job-search-card__location",
				"li.job-card-container__metadata-item",
			},
			WorkArrangement: []string{
				"span.job-card-container__metadata-item--workplace-type",
				"span.job-search-card__metadata-item",
			},

			Link:        []string{"a.base-card__full-link", "a.job-card-list__title", "a[href]"},
			CompanyLink: []string{`a[href*="/company/"]`},
			Logo:        []string{"img.artdeco-entity-image", "img"},
			LogoAttrs:   []string{"data-delayed-url", "data-src", "src"},
		},

		Detail: scrape.DetailSelectors{
			Description: []string{
				"div.show-more-less-html__markup",
				"section.description__text",
				"div.jobs-description__content",
				"div.description__text",
			},
			WorkType: []string{
				`li[data-test-id="job-details-work-type"]`,
				`li[data-test-id="job-details-employment-type"]`,
				`li[data-test-id="job-details-job-type"]`,
			},
			WorkArrangement: []string{
				`li[data-test-id="job-details-workplace-type"]`,
				"span.jobs-unified-top-card__workplace-type",
			},
			Salary: []string{
				`li[data-test-id="job-details-salary"]`,
				`span[data-test-id="salary"]`,
				"div.jobs-unified-top-card__salary-info",
			},
			Posted: []string{
				"span.posted-time-ago__text",
				"span.jobs-unified-top-card__posted-date",
			},
			Seniority: []string{
				`li[data-test-id="job-details-seniority"]`,
				`li[data-test-id="job-details-experience"]`,
			},
			ApplicationMethod: []string{
				`button[data-tracking-control-name="public_jobs_apply-link-offsite"]`,
				"button.jobs-apply-button",
				`a[data-tracking-control-name="public_jobs_apply-link-offsite"]`,
			},
			CompanyDescription: []string{
				"section.jobs-company__company-details",
				"div.jobs-company__company-description",
				`div[data-test-id="about-company"]`,
			},

			ApplyLink: []string{
				`a[data-tracking-control-name="public_jobs_apply-link-offsite"]`,
				"a.topcard__link",
			},
			CompanyLink: []string{
				"a.topcard__org-name-link",
				`a[data-control-name="company_link"]`,
			},
			Logo:      []string{"img.artdeco-entity-image", "img"},
			LogoAttrs: []string{"data-delayed-url", "data-src", "src"},

			RequirementsHeadings: []string{"qualifications", "requirements", "what you'll need", "skills"},
			BenefitsHeadings:     []string{"benefits", "what we offer", "perks"},
		},

		IDPatterns:     linkedInIDPatterns,
		OverrideFields: []string{"title", "company", "description"},

		SearchWait: fetch.WaitNetworkIdle,
		DetailWait: fetch.WaitDOMContentLoaded,
	}
}
