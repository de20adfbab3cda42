// Package state holds in-memory snapshots of library data for the UI.
package state

import (
	"github.com/AssassinTK/readlog-ai-tracker/internal/library"
	"github.com/AssassinTK/readlog-ai-tracker/internal/shelf"
)

// RecordStore owns the latest library snapshot. The UI reads from it; only
// the dispatcher writes to it.
type RecordStore interface {
	Records() []library.Record
	SetRecords([]library.Record)
	Counts() map[string]int
	SetCounts(map[string]int)
	Find(id string) (library.Record, bool)
}

type recordStore struct {
	records []library.Record
	counts  map[string]int
}

// NewRecordStore returns an empty record store.
func NewRecordStore() RecordStore {
	return &recordStore{}
}

func (s *recordStore) Records() []library.Record {
	return cloneRecords(s.records)
}

func (s *recordStore) SetRecords(records []library.Record) {
	s.records = cloneRecords(records)
}

func (s *recordStore) Counts() map[string]int {
	return cloneCounts(s.counts)
}

func (s *recordStore) SetCounts(counts map[string]int) {
	s.counts = cloneCounts(counts)
}

func (s *recordStore) Find(id string) (library.Record, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return library.Record{}, false
}

func cloneRecords(records []library.Record) []library.Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]library.Record, len(records))
	copy(dup, records)
	return dup
}

func cloneCounts(counts map[string]int) map[string]int {
	if len(counts) == 0 {
		return nil
	}
	dup := make(map[string]int, len(counts))
	for k, v := range counts {
		dup[k] = v
	}
	return dup
}

// ItemsFromRecords converts library records into navigator items. Records
// without a stored cover colour get the deterministic title hash colour.
func ItemsFromRecords(records []library.Record) []shelf.Item {
	items := make([]shelf.Item, 0, len(records))
	for _, r := range records {
		color := r.CoverColor
		if color == "" {
			color = shelf.ColorFor(r.Title)
		}
		items = append(items, shelf.Item{
			ID:         r.ID,
			Title:      r.Title,
			Category:   r.Category,
			CoverColor: color,
		})
	}
	return items
}
