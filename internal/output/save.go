// Package output persists finished runs. One JSON file per run, written
// once after the run completes, never incrementally.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"jobscrape-engine/internal/domain"
)

// Save writes jobs to path as pretty-printed UTF-8 JSON. Elements may be
// JobRecords (by value or pointer) or plain maps already in the output
// shape; any other element is a caller-contract violation and fails the
// whole call before anything touches disk. Parent directories are created,
// non-ASCII text is written literally, and a sibling lock file keeps two
// finishing runs from interleaving writes.
func Save(path string, jobs []any) (string, error) {
	records := make([]map[string]any, 0, len(jobs))
	for i, j := range jobs {
		switch v := j.(type) {
		case domain.JobRecord:
			records = append(records, v.ToMap())
		case *domain.JobRecord:
			if v == nil {
				return "", fmt.Errorf("output: nil job record at index %d", i)
			}
			records = append(records, v.ToMap())
		case map[string]any:
			records = append(records, v)
		default:
			return "", fmt.Errorf("output: unsupported job data type %T at index %d", j, i)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return "", err
	}
	defer lock.Unlock()

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return path, nil
}

// SaveRecords is the typed convenience wrapper cmd uses.
func SaveRecords(path string, jobs []domain.JobRecord) (string, error) {
	anys := make([]any, len(jobs))
	for i, j := range jobs {
		anys[i] = j
	}
	return Save(path, anys)
}
