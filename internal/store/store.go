// Package store owns access to the news document collection. The Mongo
// adapter is the production implementation; Memory backs tests. Everything
// above this package receives documents by value and never sees a live
// cursor or client handle.
package store

import (
	"context"
	"time"
)

// Document is one raw stored article, as decoded from the collection.
// Values keep their native store types (object ids, datetimes); the
// normalizer in the news package is responsible for flattening them.
type Document map[string]any

// QuerySpec describes a filtered, sorted, limited read. Filters combine
// with AND; zero values disable the corresponding predicate.
type QuerySpec struct {
	// Category matches documents whose category field contains the value,
	// case-insensitively. "tech" matches both "Technology" and "Biotech";
	// that substring behavior is deliberate.
	Category string
	// Text matches documents whose title or content contains the value,
	// case-insensitively.
	Text string
	// Since keeps only documents published at or after this instant.
	Since time.Time
	// SortKey names the field to sort on; ties retain store order.
	SortKey  string
	SortDesc bool
	// Limit caps the result size. Always > 0 by the time it reaches a store.
	Limit int
}

// CategoryCount pairs a distinct category value with its article count.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Store is the read surface over the article collection. Implementations
// must be safe for concurrent use; all methods are read-only.
type Store interface {
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
	// Find applies the spec's filter, then sort, then limit, in that order.
	Find(ctx context.Context, q QuerySpec) ([]Document, error)
	// CategoryCounts groups articles by category, ordered by count
	// descending. Tie order between equal counts is store-dependent.
	CategoryCounts(ctx context.Context) ([]CategoryCount, error)
	// Categories returns the distinct category values, order unspecified.
	Categories(ctx context.Context) ([]string, error)
}
