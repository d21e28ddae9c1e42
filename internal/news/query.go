package news

import (
	"time"

	"newsmcp/internal/store"
)

// DefaultLimit is applied when a caller omits the limit argument.
const DefaultLimit = 10

// ArgumentError marks a validation failure in tool arguments. The
// dispatcher converts it into an invalid-argument envelope.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string { return e.Reason }

// BuildFetchQuery maps fetch_news arguments to a store query: articles
// published in the last daysBack days, optionally filtered by category
// substring, newest first. daysBack <= 0 produces a future-only cutoff, so
// an empty result is the expected outcome, not an error.
func BuildFetchQuery(category string, daysBack, limit int, now time.Time) store.QuerySpec {
	return store.QuerySpec{
		Category: category,
		Since:    now.AddDate(0, 0, -daysBack),
		SortKey:  "published_date",
		SortDesc: true,
		Limit:    clampLimit(limit),
	}
}

// BuildSearchQuery maps search_news arguments to a store query: title or
// content contains the query, newest first. An empty query is rejected
// before anything reaches the store.
func BuildSearchQuery(query string, limit int) (store.QuerySpec, error) {
	if query == "" {
		return store.QuerySpec{}, &ArgumentError{Reason: "search query must not be empty"}
	}
	return store.QuerySpec{
		Text:     query,
		SortKey:  "published_date",
		SortDesc: true,
		Limit:    clampLimit(limit),
	}, nil
}

// clampLimit raises non-positive limits to 1. Policy choice: a caller
// asking for zero or fewer rows gets the smallest valid page instead of a
// silently ignored argument.
func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	return limit
}
