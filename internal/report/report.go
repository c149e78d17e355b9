// Package report builds the per-repository traffic report and persists it.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kyleking/gh-clonestats/internal/github"
)

// DefaultPath is the report file written in the working directory.
const DefaultPath = "all_traffic_report.json"

// Entry is the traffic report for a single repository.
type Entry struct {
	Name    string               `json:"name"`
	Traffic github.TrafficRecord `json:"traffic"`
	Status  github.FetchStatus   `json:"-"`
}

// NewEntry builds an entry from a fetch result. A nil record or a fetch error
// yields the zero-valued traffic record.
func NewEntry(name string, record *github.TrafficRecord, err error) Entry {
	entry := Entry{Name: name, Status: github.StatusOf(err)}
	if err != nil || record == nil {
		entry.Traffic = github.EmptyTraffic()
		if err == nil {
			entry.Status = github.StatusUnavailable
		}
		return entry
	}
	entry.Traffic = *record
	if entry.Traffic.Clones == nil {
		entry.Traffic.Clones = []github.CloneBucket{}
	}
	return entry
}

// WriteOptions controls report serialization.
type WriteOptions struct {
	// IncludeStatus adds each entry's fetch status to the file.
	IncludeStatus bool
}

type statusEntry struct {
	Name    string               `json:"name"`
	Traffic github.TrafficRecord `json:"traffic"`
	Status  github.FetchStatus   `json:"status"`
}

// Marshal encodes entries as a JSON array indented with four spaces.
func Marshal(entries []Entry, opts WriteOptions) ([]byte, error) {
	var v any
	if opts.IncludeStatus {
		withStatus := make([]statusEntry, 0, len(entries))
		for _, e := range entries {
			withStatus = append(withStatus, statusEntry{Name: e.Name, Traffic: e.Traffic, Status: e.Status})
		}
		v = withStatus
	} else {
		if entries == nil {
			entries = []Entry{}
		}
		v = entries
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Write serializes entries to path, replacing any existing file.
func Write(path string, entries []Entry, opts WriteOptions) error {
	data, err := Marshal(entries, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// Read loads a report previously written by Write. Entries written without a
// status are marked ok.
func Read(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var raw []statusEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, r := range raw {
		status := r.Status
		if status == "" {
			status = github.StatusOK
		}
		if r.Traffic.Clones == nil {
			r.Traffic.Clones = []github.CloneBucket{}
		}
		entries = append(entries, Entry{Name: r.Name, Traffic: r.Traffic, Status: status})
	}
	return entries, nil
}
