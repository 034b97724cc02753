// Package catalog holds the static, read-only record sets served by the lookup services.
//
// A Catalog is built once before the server starts and is never written afterwards,
// so concurrent requests read it without locking.
package catalog

import (
	"fmt"
	"maps"
	"slices"
)

// Catalog is an immutable mapping from key to record.
type Catalog[R any] struct {
	entries map[string]R
}

// Result is the outcome of a lookup: either the stored record (Found) or
// the absence of one. Key always holds the key that was looked up.
type Result[R any] struct {
	Key    string
	Record R
	Found  bool
}

// New builds a catalog from entries. The map is copied so later changes
// made by the caller are not visible through the catalog.
func New[R any](entries map[string]R) *Catalog[R] {
	return &Catalog[R]{entries: maps.Clone(entries)}
}

// FromRecords builds a catalog keyed by keyFn. Empty and duplicate keys are rejected.
func FromRecords[R any](records []R, keyFn func(R) string) (*Catalog[R], error) {
	entries := make(map[string]R, len(records))
	for i, rec := range records {
		key := keyFn(rec)
		if key == "" {
			return nil, fmt.Errorf("record %d has an empty key", i)
		}
		if _, exists := entries[key]; exists {
			return nil, fmt.Errorf("duplicate key %q (record %d)", key, i)
		}
		entries[key] = rec
	}
	return &Catalog[R]{entries: entries}, nil
}

// Get looks up key. Any string is accepted; a key that is not in the catalog
// is reported with Found=false rather than as an error.
func (c *Catalog[R]) Get(key string) Result[R] {
	rec, ok := c.entries[key]
	return Result[R]{Key: key, Record: rec, Found: ok}
}

// Len returns the number of records.
func (c *Catalog[R]) Len() int {
	return len(c.entries)
}

// Keys returns the catalog keys in sorted order.
func (c *Catalog[R]) Keys() []string {
	return slices.Sorted(maps.Keys(c.entries))
}
