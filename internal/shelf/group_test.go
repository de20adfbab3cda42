package shelf

import (
	"fmt"
	"reflect"
	"testing"
)

func makeItems(category string, n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: fmt.Sprintf("%s-%d", category, i), Title: fmt.Sprintf("%s %d", category, i), Category: category}
	}
	return items
}

func TestGroupSortsByCountWithStableTies(t *testing.T) {
	items := append(makeItems("A", 5), makeItems("B", 2)...)
	buckets := Group(items, []string{"A", "B", "C"})
	names := make([]string, len(buckets))
	for i, b := range buckets {
		names[i] = b.Name
	}
	expected := []string{"A", "B", "C"}
	if !reflect.DeepEqual(names, expected) {
		t.Fatalf("expected order %v, got %v", expected, names)
	}
	if len(buckets[0].Items) != 5 || len(buckets[1].Items) != 2 || len(buckets[2].Items) != 0 {
		t.Fatalf("unexpected bucket sizes: %d %d %d", len(buckets[0].Items), len(buckets[1].Items), len(buckets[2].Items))
	}
}

func TestGroupPartitionCompleteness(t *testing.T) {
	items := append(makeItems("A", 3), makeItems("B", 4)...)
	items = append(items, Item{ID: "x", Title: "No Category"})
	items = append(items, makeItems("D", 2)...)
	buckets := Group(items, []string{"A", "B"})

	total := 0
	seen := make(map[string]int)
	for _, b := range buckets {
		total += len(b.Items)
		for _, item := range b.Items {
			seen[item.ID]++
		}
	}
	if total != len(items) {
		t.Fatalf("expected %d items across buckets, got %d", len(items), total)
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("item %s appears %d times", id, count)
		}
	}
}

func TestGroupRoutesMissingCategoryToFallback(t *testing.T) {
	items := []Item{{ID: "1", Title: "Orphan"}}
	buckets := Group(items, nil)
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if buckets[0].Name != FallbackCategory {
		t.Fatalf("expected fallback bucket, got %q", buckets[0].Name)
	}
	if len(buckets[0].Items) != 1 {
		t.Fatalf("expected orphan item in fallback bucket")
	}
}

func TestGroupPreservesItemOrderWithinBucket(t *testing.T) {
	items := []Item{
		{ID: "1", Title: "First", Category: "A"},
		{ID: "2", Title: "Second", Category: "A"},
		{ID: "3", Title: "Third", Category: "A"},
	}
	buckets := Group(items, nil)
	for i, item := range buckets[0].Items {
		if item.ID != items[i].ID {
			t.Fatalf("expected item %s at position %d, got %s", items[i].ID, i, item.ID)
		}
	}
}

func TestGroupDiscoveredCategoriesKeepFirstSeenOrder(t *testing.T) {
	items := []Item{
		{ID: "1", Title: "a", Category: "Zeta"},
		{ID: "2", Title: "b", Category: "Alpha"},
		{ID: "3", Title: "c", Category: "Zeta"},
	}
	buckets := Group(items, nil)
	if buckets[0].Name != "Zeta" || buckets[1].Name != "Alpha" {
		t.Fatalf("expected [Zeta Alpha], got [%s %s]", buckets[0].Name, buckets[1].Name)
	}
}

func TestGroupIsDeterministic(t *testing.T) {
	items := append(makeItems("A", 2), makeItems("B", 2)...)
	items = append(items, makeItems("C", 2)...)
	first := Group(items, []string{"B"})
	for i := 0; i < 10; i++ {
		again := Group(items, []string{"B"})
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("grouping is not deterministic: %v vs %v", first, again)
		}
	}
}

func TestGroupEmptyInput(t *testing.T) {
	if buckets := Group(nil, nil); len(buckets) != 0 {
		t.Fatalf("expected no buckets for empty input, got %d", len(buckets))
	}
	buckets := Group(nil, []string{"A"})
	if len(buckets) != 1 || buckets[0].Name != "A" || len(buckets[0].Items) != 0 {
		t.Fatalf("expected single empty default bucket, got %v", buckets)
	}
}
