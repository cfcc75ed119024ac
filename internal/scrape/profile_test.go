package scrape

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscrape-engine/internal/config"
)

func urlQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Query()
}

func TestSearchURLFirstPageOmitsPageParam(t *testing.T) {
	p := Profile{
		RootURL:       "https://jobs.example",
		SearchPath:    "/search",
		KeywordParam:  "q",
		LocationParam: "where",
		PageParam:     "page",
	}
	cfg := config.Search{Keywords: "go developer", Location: "Sydney NSW"}

	raw := p.SearchURL(cfg, 1)
	q := urlQuery(t, raw)
	assert.Equal(t, "go developer", q.Get("q"))
	assert.Equal(t, "Sydney NSW", q.Get("where"))
	assert.False(t, q.Has("page"))
	assert.Contains(t, raw, "https://jobs.example/search?")
}

func TestSearchURLPageNumberPagination(t *testing.T) {
	p := Profile{
		RootURL:      "https://jobs.example",
		SearchPath:   "/search",
		KeywordParam: "q", LocationParam: "where", PageParam: "page",
		Pagination: PageNumber,
	}
	q := urlQuery(t, p.SearchURL(config.Search{Keywords: "go"}, 3))
	assert.Equal(t, "3", q.Get("page"))
}

func TestSearchURLResultOffsetPagination(t *testing.T) {
	p := Profile{
		RootURL:      "https://jobs.example",
		SearchPath:   "/search",
		KeywordParam: "q", LocationParam: "where", PageParam: "start",
		Pagination:  ResultOffset,
		JobsPerPage: 25,
	}
	q := urlQuery(t, p.SearchURL(config.Search{Keywords: "go"}, 3))
	assert.Equal(t, "50", q.Get("start"))
}

func TestSearchURLRecencyVerbatim(t *testing.T) {
	p := Profile{
		RootURL:      "https://jobs.example",
		SearchPath:   "/search",
		KeywordParam: "q", LocationParam: "where",
		RecencyParam: "daterange",
	}
	q := urlQuery(t, p.SearchURL(config.Search{Keywords: "go", Recency: "3"}, 1))
	assert.Equal(t, "3", q.Get("daterange"))

	q = urlQuery(t, p.SearchURL(config.Search{Keywords: "go"}, 1))
	assert.False(t, q.Has("daterange"))
}

func TestSearchURLRecencySeconds(t *testing.T) {
	p := Profile{
		RootURL:      "https://jobs.example",
		SearchPath:   "/search",
		KeywordParam: "q", LocationParam: "where",
		RecencyParam: "f_TPR",
		Recency:      RecencySeconds,
	}
	q := urlQuery(t, p.SearchURL(config.Search{Keywords: "go", Recency: "86400"}, 1))
	assert.Equal(t, "r86400", q.Get("f_TPR"))

	// junk and non-positive values drop the parameter instead of emitting it
	q = urlQuery(t, p.SearchURL(config.Search{Keywords: "go", Recency: "soon"}, 1))
	assert.False(t, q.Has("f_TPR"))
	q = urlQuery(t, p.SearchURL(config.Search{Keywords: "go", Recency: "0"}, 1))
	assert.False(t, q.Has("f_TPR"))
}

func TestSearchURLExtraParams(t *testing.T) {
	p := Profile{
		RootURL:      "https://jobs.example",
		SearchPath:   "/search",
		KeywordParam: "q", LocationParam: "where",
		ExtraParams: url.Values{"refresh": {"true"}},
	}
	q := urlQuery(t, p.SearchURL(config.Search{Keywords: "go"}, 1))
	assert.Equal(t, "true", q.Get("refresh"))
}
