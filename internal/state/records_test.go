package state

import (
	"testing"

	"github.com/AssassinTK/readlog-ai-tracker/internal/library"
	"github.com/AssassinTK/readlog-ai-tracker/internal/shelf"
)

func TestRecordStoreClonesOnReadAndWrite(t *testing.T) {
	store := NewRecordStore()
	input := []library.Record{{ID: "1", Title: "Dune"}}
	store.SetRecords(input)
	input[0].Title = "mutated"

	records := store.Records()
	if records[0].Title != "Dune" {
		t.Fatalf("store aliased caller slice: %+v", records[0])
	}
	records[0].Title = "mutated again"
	if store.Records()[0].Title != "Dune" {
		t.Fatalf("store exposed internal slice")
	}
}

func TestRecordStoreFind(t *testing.T) {
	store := NewRecordStore()
	store.SetRecords([]library.Record{{ID: "1", Title: "Dune"}, {ID: "2", Title: "Emma"}})
	if r, ok := store.Find("2"); !ok || r.Title != "Emma" {
		t.Fatalf("expected to find record 2, got %v %v", r, ok)
	}
	if _, ok := store.Find("missing"); ok {
		t.Fatalf("expected missing id to report not found")
	}
}

func TestItemsFromRecordsFillsCoverColor(t *testing.T) {
	items := ItemsFromRecords([]library.Record{
		{ID: "1", Title: "Dune", Category: "Sci-Fi", CoverColor: "#112233"},
		{ID: "2", Title: "Emma"},
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].CoverColor != "#112233" {
		t.Fatalf("expected stored colour preserved, got %s", items[0].CoverColor)
	}
	if items[1].CoverColor != shelf.ColorFor("Emma") {
		t.Fatalf("expected hashed colour for missing cover, got %s", items[1].CoverColor)
	}
}
