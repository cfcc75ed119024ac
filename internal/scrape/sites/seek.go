// Package sites holds the built-in site profiles. A profile is pure data;
// selector lists are ordered newest site layout first so markup drift
// degrades to the older cascades instead of breaking extraction.
package sites

import (
	"regexp"

	"jobscrape-engine/internal/fetch"
	"jobscrape-engine/internal/scrape"
)

var seekIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/job/(\d+)`),
	regexp.MustCompile(`[?&]jobId=(\d+)`),
}

// Seek profiles seek.com.au. Cards are marked with data-automation
// attributes; the generic article fallback covers markers moving again.
func Seek() scrape.Profile {
	return scrape.Profile{
		Name:       "Seek",
		RootURL:    "https://www.seek.com.au",
		SearchPath: "/jobs",

		KeywordParam:  "keywords",
		LocationParam: "where",
		PageParam:     "page",
		Pagination:    scrape.PageNumber,
		RecencyParam:  "daterange",
		Recency:       scrape.RecencyVerbatim,

		Card: scrape.CardSelectors{
			Strategies: []string{
				`[data-automation="normalJob"]`,
				`[data-automation="premiumJob"]`,
				`[data-automation="job-card"]`,
			},
			Fallback: "article",

			Title:       []string{`[data-automation="jobTitle"]`, `[data-automation="job-title"]`},
			Company:     []string{`[data-automation="jobCompany"]`, `[data-automation="job-company"]`},
			Location:    []string{`[data-automation="jobLocation"]`, `[data-automation="job-location"]`},
			Salary:      []string{`[data-automation="jobSalary"]`, `[data-automation="job-salary"]`},
			ListingDate: []string{`[data-automation="jobListingDate"]`, `[data-automation="jobCardDate"]`, `[data-automation="listing-date"]`},
			Summary:     []string{`[data-automation="jobShortDescription"]`, `[data-automation="job-short-description"]`},

			Link:    []string{`a[data-automation="jobTitle"]`, `a[href]`},
			IDAttrs: []string{"data-job-id", "data-search-sol-job-id", "data-job-id-hash"},
		},

		Detail: scrape.DetailSelectors{
			Description: []string{`[data-automation="jobAdDetails"]`, `[data-automation="jobDescription"]`},
			WorkType:    []string{`[data-automation="job-detail-work-type"]`},
			Salary:      []string{`[data-automation="job-detail-salary"]`, `[data-automation="job-detail-add-expected-salary"]`},
			Posted:      []string{`[data-automation="jobListingDate"]`},
			ApplyLink:   []string{`a[data-automation="job-detail-apply"]`},
			CompanyLink: []string{`a[data-automation="advertiser-name"]`},

			RequirementsHeadings: []string{"requirements", "qualifications", "skills and experience", "about you"},
			BenefitsHeadings:     []string{"benefits", "what we offer", "perks", "what's on offer"},
		},

		IDPatterns:     seekIDPatterns,
		OverrideFields: []string{"title", "company", "description"},

		SearchWait: fetch.WaitNetworkIdle,
		DetailWait: fetch.WaitDOMContentLoaded,
	}
}
