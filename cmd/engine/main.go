package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"jobscrape-engine/internal/config"
	"jobscrape-engine/internal/events"
	"jobscrape-engine/internal/fetch"
	"jobscrape-engine/internal/output"
	"jobscrape-engine/internal/scrape"
	"jobscrape-engine/internal/scrape/sites"
)

type run struct {
	name    string
	profile scrape.Profile
	search  config.Search
	outFile string
}

func main() {
	cfgPath := os.Getenv("SCRAPER_CONFIG")
	if cfgPath == "" {
		cfgPath = filepath.Join("config", "config.yml")
	}
	cfg := config.Load(cfgPath)

	hub := events.NewHub()
	ch := hub.Subscribe()
	go logEvents(ch)
	defer hub.Unsubscribe(ch)

	client, err := fetch.NewBrowser()
	if err != nil {
		log.Fatalf("browser start failed: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	runs := []run{
		{"seek", sites.Seek(), cfg.Seek, filepath.Join(cfg.OutputDir, "seek_jobs.json")},
		{"linkedin", sites.LinkedIn(), cfg.LinkedIn, filepath.Join(cfg.OutputDir, "linkedin_jobs.json")},
	}

	// Each run is internally sequential against its site; the two sites are
	// independent, so they go in parallel.
	var g errgroup.Group
	for _, r := range runs {
		r := r
		g.Go(func() error {
			eng := scrape.New(r.profile, r.search, client, hub)
			jobs, err := eng.Run(ctx)
			if err != nil {
				log.Printf("[%s] run stopped: %v", r.name, err)
			}
			if len(jobs) == 0 {
				log.Printf("[%s] no jobs found", r.name)
				return nil
			}
			path, err := output.SaveRecords(r.outFile, jobs)
			if err != nil {
				return err
			}
			log.Printf("[%s] saved %d job(s) to %s", r.name, len(jobs), path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

// logEvents renders the engine's diagnostic stream. Warnings get their own
// log level-ish prefix; everything else is one line per event.
func logEvents(ch chan string) {
	for msg := range ch {
		var e events.Event
		if err := json.Unmarshal([]byte(msg), &e); err != nil {
			log.Printf("[event] %s", msg)
			continue
		}
		switch e.Type {
		case events.TypePageFailed, events.TypeDetailFailed:
			log.Printf("[%s] warn %s %s", e.Site, e.Type, string(e.Data))
		case events.TypeCardsParsed, events.TypeRunFinished:
			log.Printf("[%s] %s %s", e.Site, e.Type, string(e.Data))
		}
	}
}
