package events

import "github.com/AssassinTK/readlog-ai-tracker/internal/logging"

type LibraryTracer struct{}

var Library = LibraryTracer{}

func (LibraryTracer) Added(id, title string) {
	logging.Trace("library.add", map[string]interface{}{"id": id, "title": title})
}

func (LibraryTracer) Updated(id, title string) {
	logging.Trace("library.update", map[string]interface{}{"id": id, "title": title})
}

func (LibraryTracer) Deleted(id string) {
	logging.Trace("library.delete", map[string]interface{}{"id": id})
}

func (LibraryTracer) Finished(id string, rating int) {
	logging.Trace("library.finish", map[string]interface{}{"id": id, "rating": rating})
}

func (LibraryTracer) Snapshot(records int) {
	logging.Trace("library.snapshot", map[string]interface{}{"records": records})
}
