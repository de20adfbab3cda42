package events

import "github.com/AssassinTK/readlog-ai-tracker/internal/logging"

type ShelfTracer struct{}

var Shelf = ShelfTracer{}

func (ShelfTracer) Warp(from, to int) {
	logging.Trace("shelf.warp", map[string]interface{}{"from": from, "to": to})
}

func (ShelfTracer) WarpDone(active int) {
	logging.Trace("shelf.warp.done", map[string]interface{}{"active": active})
}

func (ShelfTracer) Rebind(buckets, active int) {
	logging.Trace("shelf.rebind", map[string]interface{}{"buckets": buckets, "active": active})
}

func (ShelfTracer) FieldStart(particles int) {
	logging.Trace("shelf.field.start", map[string]interface{}{"particles": particles})
}

func (ShelfTracer) FieldStop() {
	logging.Trace("shelf.field.stop", nil)
}
