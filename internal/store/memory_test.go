package store

import (
	"context"
	"testing"
	"time"
)

func memDocs() []Document {
	base := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	return []Document{
		{"_id": "1", "title": "Quantum computing advance", "content": "chips", "category": "Technology", "published_date": base.Add(48 * time.Hour)},
		{"_id": "2", "title": "Market report", "content": "stocks fall on quantum hype", "category": "Business", "published_date": base.Add(24 * time.Hour)},
		{"_id": "3", "title": "Biotech funding round", "content": "genomics", "category": "Biotech", "published_date": base},
		{"_id": "4", "title": "Old tech story", "content": "legacy systems", "category": "Technology", "published_date": base.Add(-240 * time.Hour)},
	}
}

func TestMemoryFindCategorySubstring(t *testing.T) {
	m := NewMemory(memDocs()...)
	docs, err := m.Find(context.Background(), QuerySpec{
		Category: "tech",
		SortKey:  "published_date",
		SortDesc: true,
		Limit:    10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// substring semantics: Technology twice plus Biotech
	if len(docs) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(docs))
	}
	if docs[0]["_id"] != "1" || docs[2]["_id"] != "4" {
		t.Fatalf("not sorted newest first: %v, %v", docs[0]["_id"], docs[2]["_id"])
	}
}

func TestMemoryFindTextAcrossFields(t *testing.T) {
	m := NewMemory(memDocs()...)
	docs, err := m.Find(context.Background(), QuerySpec{
		Text:    "Quantum",
		SortKey: "published_date",
		Limit:   10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// matches title of doc 1 and content of doc 2, case-insensitively
	if len(docs) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(docs))
	}
}

func TestMemoryFindSinceAndLimit(t *testing.T) {
	m := NewMemory(memDocs()...)
	since := time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC)
	docs, err := m.Find(context.Background(), QuerySpec{
		Since:    since,
		SortKey:  "published_date",
		SortDesc: true,
		Limit:    2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("limit not applied, got %d docs", len(docs))
	}
	for _, doc := range docs {
		if doc["_id"] == "4" {
			t.Fatal("document older than cutoff returned")
		}
	}
}

func TestMemoryCategoryCounts(t *testing.T) {
	m := NewMemory(memDocs()...)
	counts, err := m.CategoryCounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(counts))
	}
	if counts[0].Name != "Technology" || counts[0].Count != 2 {
		t.Fatalf("expected Technology first with count 2, got %+v", counts[0])
	}
	for i := 1; i < len(counts); i++ {
		if counts[i].Count > counts[i-1].Count {
			t.Fatalf("counts not descending: %+v", counts)
		}
	}
}

func TestMemoryCategories(t *testing.T) {
	m := NewMemory(memDocs()...)
	values, err := m.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("expected 3 distinct categories, got %v", values)
	}
}

func TestMemoryCopiesInput(t *testing.T) {
	docs := memDocs()
	m := NewMemory(docs...)
	docs[0] = Document{"_id": "mutated"}
	got, err := m.Find(context.Background(), QuerySpec{SortKey: "_id", Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, doc := range got {
		if doc["_id"] == "mutated" {
			t.Fatal("memory store should not alias the caller's slice")
		}
	}
}
