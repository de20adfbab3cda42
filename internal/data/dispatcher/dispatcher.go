// Package dispatcher routes library watcher events into the UI state stores.
package dispatcher

import (
	"github.com/AssassinTK/readlog-ai-tracker/internal/library"
	"github.com/AssassinTK/readlog-ai-tracker/internal/state"
)

type Result struct {
	RecordsUpdated bool
}

type Dispatcher struct {
	records state.RecordStore
}

func New(records state.RecordStore) *Dispatcher {
	return &Dispatcher{records: records}
}

func (d *Dispatcher) Handle(evt library.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	d.records.SetRecords(evt.Snapshot.Records)
	d.records.SetCounts(evt.Snapshot.Counts)
	res.RecordsUpdated = true
	return res
}
