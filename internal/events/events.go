// Package events carries structured run diagnostics. The engine publishes
// typed JSON events instead of holding a logger; whoever runs it decides
// whether they end up on stderr, in a test assertion, or nowhere.
package events

import (
	"encoding/json"
	"time"
)

// Event types emitted over one scrape run.
const (
	TypeRunStarted   = "run_started"
	TypePageFetched  = "page_fetched"
	TypePageFailed   = "page_failed"
	TypeCardsParsed  = "cards_parsed"
	TypeDetailFailed = "detail_failed"
	TypeRecordReady  = "record_ready"
	TypeRunFinished  = "run_finished"
)

type Event struct {
	Type    string          `json:"type"`
	Version int             `json:"v"`
	At      time.Time       `json:"at"`
	Site    string          `json:"site,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Make serializes one event. Marshal failures degrade to an event without
// data rather than failing the run.
func Make(site, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			raw = b
		}
	}
	e := Event{
		Type:    typ,
		Version: 1,
		At:      time.Now().UTC(),
		Site:    site,
		Data:    raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
