// Package news holds the pure core between the store and the transports:
// building queries from tool arguments, normalizing raw documents into the
// stable Article shape, and wrapping results into response envelopes.
package news

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"newsmcp/internal/store"
)

// Article is the external representation of one stored news document.
// The id is always a plain string and the published date is always ISO-8601
// text; native store types never cross this boundary.
type Article struct {
	ID            string `json:"_id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Source        string `json:"source"`
	Category      string `json:"category"`
	URL           string `json:"url,omitempty"`
	PublishedDate string `json:"published_date"`
}

// Normalize converts a raw store document into an Article. It is total:
// malformed or missing fields degrade to zero values instead of failing.
func Normalize(doc store.Document) Article {
	return Article{
		ID:            normalizeID(doc["_id"]),
		Title:         stringField(doc, "title"),
		Content:       stringField(doc, "content"),
		Source:        stringField(doc, "source"),
		Category:      stringField(doc, "category"),
		URL:           stringField(doc, "url"),
		PublishedDate: normalizeTime(doc["published_date"]),
	}
}

// NormalizeAll maps Normalize over a result set, preserving order. The
// result is never nil so envelopes marshal an empty list rather than null.
func NormalizeAll(docs []store.Document) []Article {
	articles := make([]Article, 0, len(docs))
	for _, doc := range docs {
		articles = append(articles, Normalize(doc))
	}
	return articles
}

// Truncate shortens content for human-readable previews. The structured
// payload always carries the full content; only formatted text uses this.
func Truncate(content string, maxChars int) string {
	runes := []rune(content)
	if len(runes) <= maxChars {
		return content
	}
	return string(runes[:maxChars]) + "..."
}

func normalizeID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case bson.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}

func normalizeTime(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case bson.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case string:
		return t
	default:
		return time.Time{}.UTC().Format(time.RFC3339)
	}
}

func stringField(doc store.Document, key string) string {
	s, _ := doc[key].(string)
	return s
}
