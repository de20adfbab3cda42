// Package shelf implements the spatial shelf navigator: category grouping,
// the warp navigation state machine, the background particle field, and the
// pointer proximity trigger for the detail panel.
package shelf

import "sort"

// FallbackCategory is the reserved bucket name for items with no category.
const FallbackCategory = "Uncategorized"

// Item is a single reading record as seen by the navigator. The library
// owns the full record; the navigator only needs display fields.
type Item struct {
	ID         string
	Title      string
	Category   string
	CoverColor string
}

// Bucket is a named group of items rendered together at one shelf position.
// Buckets are rebuilt wholesale whenever the item list changes and are never
// mutated in place.
type Bucket struct {
	Name  string
	Items []Item
}

// Group partitions items into ordered buckets. Every name in
// defaultCategories opens an empty bucket up front, in the given order;
// categories discovered in the items are appended in first-seen order.
// Items without a category land in the Uncategorized bucket. The result is
// stable-sorted by item count descending, so equal counts keep the order the
// bucket names were first established.
func Group(items []Item, defaultCategories []string) []Bucket {
	buckets := make([]Bucket, 0, len(defaultCategories)+1)
	index := make(map[string]int, len(defaultCategories)+1)
	for _, name := range defaultCategories {
		if name == "" {
			continue
		}
		if _, ok := index[name]; ok {
			continue
		}
		index[name] = len(buckets)
		buckets = append(buckets, Bucket{Name: name})
	}
	for _, item := range items {
		name := item.Category
		if name == "" {
			name = FallbackCategory
		}
		idx, ok := index[name]
		if !ok {
			idx = len(buckets)
			index[name] = idx
			buckets = append(buckets, Bucket{Name: name})
		}
		buckets[idx].Items = append(buckets[idx].Items, item)
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return len(buckets[i].Items) > len(buckets[j].Items)
	})
	return buckets
}
