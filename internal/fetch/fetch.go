// Package fetch defines the page-fetching contract the scrape engine depends
// on. The engine never talks to a browser directly; anything that can turn a
// URL into rendered HTML satisfies Client.
package fetch

import "context"

// Mode selects how long the fetcher waits before snapshotting the page.
// Search pages load results asynchronously and need a quiet network; detail
// pages are usable at DOMContentLoaded.
type Mode int

const (
	WaitDOMContentLoaded Mode = iota
	WaitNetworkIdle
)

// Result is the outcome of one page fetch. Success=false means the page is
// unusable; HTML may still be empty on success for blank documents.
type Result struct {
	Success bool
	HTML    string
}

type Client interface {
	Fetch(ctx context.Context, url string, mode Mode) (Result, error)
}
