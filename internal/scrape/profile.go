package scrape

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"jobscrape-engine/internal/config"
	"jobscrape-engine/internal/fetch"
)

// Pagination describes how a site encodes pages after the first. Page 1
// never carries the parameter.
type Pagination int

const (
	// PageNumber emits the page number itself (?page=2).
	PageNumber Pagination = iota
	// ResultOffset emits a zero-based result offset (?start=25).
	ResultOffset
)

// RecencyEncoding describes how the configured recency filter maps onto the
// site's query parameter.
type RecencyEncoding int

const (
	// RecencyVerbatim passes the configured value through unchanged
	// (Seek's coded daterange strings).
	RecencyVerbatim RecencyEncoding = iota
	// RecencySeconds expects a duration in seconds and encodes it as
	// r<seconds> (LinkedIn's f_TPR). Unparsable or non-positive values
	// drop the parameter.
	RecencySeconds
)

// CardSelectors are the per-field selector cascades applied to one search
// result card. Each list is ordered newest layout first; the first selector
// producing non-empty text wins.
type CardSelectors struct {
	// Strategies locate the card containers themselves. Fallback, when
	// non-empty, is tried only if every strategy matched nothing.
	Strategies []string
	Fallback   string

	Title           []string
	Company         []string
	Location        []string
	WorkArrangement []string
	Salary          []string
	ListingDate     []string
	Summary         []string

	Link        []string // anchors carrying the detail URL
	IDAttrs     []string // card attributes carrying the job id
	CompanyLink []string
	Logo        []string
	LogoAttrs   []string // image source attributes, lazy-load ones first
}

// DetailSelectors are the cascades applied to a job detail page after the
// structured-data pass.
type DetailSelectors struct {
	Description        []string
	WorkType           []string
	WorkArrangement    []string
	Salary             []string
	Posted             []string
	Seniority          []string
	ApplicationMethod  []string
	CompanyDescription []string

	ApplyLink   []string
	CompanyLink []string
	Logo        []string
	LogoAttrs   []string

	RequirementsHeadings []string
	BenefitsHeadings     []string
}

// Profile captures one source site as data: URL shape, selector cascades,
// identifier patterns and merge rules. Adding a site (or a site's next
// layout version) means writing a new Profile, not a new scraper.
type Profile struct {
	Name        string // source tag on emitted records
	RootURL     string
	SearchPath  string
	JobsPerPage int

	KeywordParam  string
	LocationParam string
	PageParam     string
	Pagination    Pagination
	RecencyParam  string
	Recency       RecencyEncoding
	ExtraParams   url.Values

	Card   CardSelectors
	Detail DetailSelectors

	// IDPatterns are tried in order against the detail URL when no other
	// source produced an id.
	IDPatterns []*regexp.Regexp

	// OverrideFields name the record fields where structured data beats
	// card data; everything else is fill-if-absent.
	OverrideFields []string

	SearchWait fetch.Mode
	DetailWait fetch.Mode
}

// SearchURL builds the search page URL for one page. Pure function of its
// inputs; all values are percent-encoded.
func (p Profile) SearchURL(cfg config.Search, page int) string {
	q := url.Values{}
	q.Set(p.KeywordParam, cfg.Keywords)
	q.Set(p.LocationParam, cfg.Location)
	for k, vs := range p.ExtraParams {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	if page > 1 {
		switch p.Pagination {
		case ResultOffset:
			q.Set(p.PageParam, strconv.Itoa((page-1)*p.JobsPerPage))
		default:
			q.Set(p.PageParam, strconv.Itoa(page))
		}
	}

	if filter := strings.TrimSpace(cfg.Recency); filter != "" && p.RecencyParam != "" {
		switch p.Recency {
		case RecencySeconds:
			if secs, err := strconv.Atoi(filter); err == nil && secs > 0 {
				q.Set(p.RecencyParam, "r"+strconv.Itoa(secs))
			}
		default:
			q.Set(p.RecencyParam, filter)
		}
	}

	return p.RootURL + p.SearchPath + "?" + q.Encode()
}

func (p Profile) overrides(field string) bool {
	for _, f := range p.OverrideFields {
		if f == field {
			return true
		}
	}
	return false
}
