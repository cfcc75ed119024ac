// Package scrape turns job-board markup into JobRecords. One profile-driven
// engine serves every site: the Profile carries the selectors and URL shape,
// the engine carries the control flow.
package scrape

import (
	"context"

	"jobscrape-engine/internal/config"
	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/events"
	"jobscrape-engine/internal/fetch"
)

// Engine runs one scrape: sequential pages, and within a page sequential
// detail enrichment, so at most one request is in flight against the source
// site. Run is the only entry point; callers wanting concurrency run
// independent engines.
type Engine struct {
	profile Profile
	cfg     config.Search
	client  fetch.Client
	hub     *events.Hub
}

func New(profile Profile, cfg config.Search, client fetch.Client, hub *events.Hub) *Engine {
	return &Engine{profile: profile, cfg: cfg, client: client, hub: hub}
}

// Run visits up to MaxPages search pages and returns at most MaxJobs
// records. Fetch failures are contained: a failed search page contributes
// zero cards, a failed detail page leaves its record unenriched, and the
// run carries on. Both caps are checked before starting each unit of work,
// so a cap reached mid-page stops further enrichment immediately. The only
// error Run returns is context cancellation, together with whatever was
// collected so far.
func (e *Engine) Run(ctx context.Context) ([]domain.JobRecord, error) {
	name := e.profile.Name
	e.hub.Publish(events.Make(name, events.TypeRunStarted, map[string]any{
		"keywords":  e.cfg.Keywords,
		"location":  e.cfg.Location,
		"max_jobs":  e.cfg.MaxJobs,
		"max_pages": e.cfg.MaxPages,
	}))

	var results []domain.JobRecord
	for page := 1; page <= e.cfg.MaxPages; page++ {
		if len(results) >= e.cfg.MaxJobs {
			break
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		searchURL := e.profile.SearchURL(e.cfg, page)
		res, err := e.client.Fetch(ctx, searchURL, e.profile.SearchWait)
		if err != nil || !res.Success {
			e.hub.Publish(events.Make(name, events.TypePageFailed, map[string]any{
				"page": page,
				"url":  searchURL,
				"err":  errString(err),
			}))
			continue
		}
		e.hub.Publish(events.Make(name, events.TypePageFetched, map[string]any{
			"page": page,
			"url":  searchURL,
		}))

		cards := ExtractCards(res.HTML, e.profile)
		e.hub.Publish(events.Make(name, events.TypeCardsParsed, map[string]any{
			"page":  page,
			"cards": len(cards),
		}))

		for _, rec := range cards {
			if len(results) >= e.cfg.MaxJobs {
				break
			}
			if err := ctx.Err(); err != nil {
				return results, err
			}

			if rec.JobURL != "" {
				det, err := e.client.Fetch(ctx, rec.JobURL, e.profile.DetailWait)
				if err != nil || !det.Success {
					e.hub.Publish(events.Make(name, events.TypeDetailFailed, map[string]any{
						"url": rec.JobURL,
						"err": errString(err),
					}))
				} else {
					Enrich(rec, det.HTML, e.profile)
				}
			}

			results = append(results, *rec)
			e.hub.Publish(events.Make(name, events.TypeRecordReady, map[string]any{
				"id":    rec.ID,
				"title": rec.Title,
			}))
		}
	}

	if len(results) > e.cfg.MaxJobs {
		results = results[:e.cfg.MaxJobs]
	}
	e.hub.Publish(events.Make(name, events.TypeRunFinished, map[string]any{
		"records": len(results),
	}))
	return results, nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
