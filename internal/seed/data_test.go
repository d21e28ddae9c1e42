package seed

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestSampleArticlesShape(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	docs := SampleArticles(now)

	if len(docs) != 10 {
		t.Fatalf("expected 10 sample articles, got %d", len(docs))
	}

	counts := make(map[string]int)
	for _, doc := range docs {
		if _, ok := doc["_id"].(bson.ObjectID); !ok {
			t.Fatalf("sample article missing object id: %v", doc["_id"])
		}
		published, ok := doc["published_date"].(time.Time)
		if !ok {
			t.Fatalf("sample article missing published_date: %v", doc["published_date"])
		}
		if published.After(now) {
			t.Fatalf("sample article published in the future: %v", published)
		}
		if now.Sub(published) > 7*24*time.Hour {
			t.Fatalf("sample article older than a week: %v", published)
		}
		category, _ := doc["category"].(string)
		counts[category]++
	}

	if len(counts) != 8 {
		t.Fatalf("expected 8 distinct categories, got %d", len(counts))
	}
	if counts["Technology"] != 2 || counts["Environment"] != 2 {
		t.Fatalf("Technology and Environment should appear twice: %v", counts)
	}
}
