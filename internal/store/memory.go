package store

import (
	"context"
	"sort"
	"strings"
	"time"
)

// Memory is an in-memory Store with the same query semantics as the Mongo
// adapter. It exists so the dispatcher and envelope layers can be tested
// without a running database.
type Memory struct {
	docs []Document
}

// NewMemory builds a Memory store over the given documents. The slice is
// copied; callers may keep mutating their own copy.
func NewMemory(docs ...Document) *Memory {
	m := &Memory{docs: make([]Document, len(docs))}
	copy(m.docs, docs)
	return m
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) Find(ctx context.Context, q QuerySpec) ([]Document, error) {
	var matched []Document
	for _, doc := range m.docs {
		if q.Category != "" && !containsFold(docString(doc, "category"), q.Category) {
			continue
		}
		if q.Text != "" &&
			!containsFold(docString(doc, "title"), q.Text) &&
			!containsFold(docString(doc, "content"), q.Text) {
			continue
		}
		if !q.Since.IsZero() && docTime(doc, "published_date").Before(q.Since) {
			continue
		}
		matched = append(matched, doc)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if q.SortDesc {
			a, b = b, a
		}
		if q.SortKey == "published_date" {
			return docTime(a, q.SortKey).Before(docTime(b, q.SortKey))
		}
		return docString(a, q.SortKey) < docString(b, q.SortKey)
	})

	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (m *Memory) CategoryCounts(ctx context.Context) ([]CategoryCount, error) {
	byName := make(map[string]int)
	for _, doc := range m.docs {
		byName[docString(doc, "category")]++
	}
	counts := make([]CategoryCount, 0, len(byName))
	for name, n := range byName {
		counts = append(counts, CategoryCount{Name: name, Count: n})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts, nil
}

func (m *Memory) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var values []string
	for _, doc := range m.docs {
		name := docString(doc, "category")
		if !seen[name] {
			seen[name] = true
			values = append(values, name)
		}
	}
	return values, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func docString(doc Document, key string) string {
	s, _ := doc[key].(string)
	return s
}

func docTime(doc Document, key string) time.Time {
	t, _ := doc[key].(time.Time)
	return t
}
