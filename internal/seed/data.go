package seed

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"newsmcp/internal/store"
)

// SampleArticles returns the demo corpus: ten articles across eight
// categories (Technology and Environment appear twice), with publication
// times spread over the five days before now.
func SampleArticles(now time.Time) []store.Document {
	type sample struct {
		title    string
		content  string
		category string
		source   string
		url      string
		age      time.Duration
	}

	samples := []sample{
		{
			title:    "AI Breakthrough: New Model Achieves Human-Level Performance",
			content:  "Researchers have announced a significant breakthrough in artificial intelligence, with a new model demonstrating human-level performance across multiple benchmarks. The model shows unprecedented capabilities in reasoning, understanding context, and generating creative solutions.",
			category: "Technology",
			source:   "Tech News Daily",
			url:      "https://example.com/ai-breakthrough",
			age:      2 * time.Hour,
		},
		{
			title:    "Global Markets Rally on Positive Economic Data",
			content:  "Stock markets worldwide experienced significant gains today following the release of encouraging economic indicators. Investors responded enthusiastically to reports showing stronger-than-expected job growth and declining inflation rates.",
			category: "Business",
			source:   "Financial Times",
			url:      "https://example.com/markets-rally",
			age:      5 * time.Hour,
		},
		{
			title:    "Climate Summit Reaches Historic Agreement",
			content:  "World leaders have signed a groundbreaking climate agreement at this year's international summit. The accord includes concrete commitments to reduce carbon emissions and transition to renewable energy sources over the next decade.",
			category: "Environment",
			source:   "World News Network",
			url:      "https://example.com/climate-summit",
			age:      24 * time.Hour,
		},
		{
			title:    "New Study Reveals Benefits of Mediterranean Diet",
			content:  "A comprehensive 10-year study has provided compelling evidence for the health benefits of the Mediterranean diet. Researchers found significant reductions in heart disease, diabetes, and cognitive decline among participants who followed the diet.",
			category: "Health",
			source:   "Health Journal",
			url:      "https://example.com/mediterranean-diet",
			age:      48 * time.Hour,
		},
		{
			title:    "Championship Team Secures Victory in Overtime",
			content:  "In a thrilling overtime finish, the home team secured their championship victory with a dramatic last-minute goal. The match, which kept fans on the edge of their seats, will be remembered as one of the most exciting games of the season.",
			category: "Sports",
			source:   "Sports Daily",
			url:      "https://example.com/championship-victory",
			age:      32 * time.Hour,
		},
		{
			title:    "Streaming Platform Announces Record-Breaking Series",
			content:  "The latest series from a major streaming platform has shattered viewing records, becoming the most-watched premiere in the platform's history. The show has captivated audiences worldwide with its compelling storyline and stellar cast.",
			category: "Entertainment",
			source:   "Entertainment Weekly",
			url:      "https://example.com/streaming-record",
			age:      12 * time.Hour,
		},
		{
			title:    "Scientists Discover New Species in Deep Ocean",
			content:  "Marine biologists have discovered several previously unknown species during a deep-sea expedition. The findings include unique bioluminescent creatures that thrive in extreme pressure conditions thousands of meters below the surface.",
			category: "Science",
			source:   "Science Today",
			url:      "https://example.com/ocean-discovery",
			age:      72 * time.Hour,
		},
		{
			title:    "Tech Giant Unveils Revolutionary Quantum Computer",
			content:  "A leading technology company has unveiled its latest quantum computer, claiming it can solve complex problems exponentially faster than traditional supercomputers. The breakthrough could revolutionize fields from cryptography to drug discovery.",
			category: "Technology",
			source:   "Tech News Daily",
			url:      "https://example.com/quantum-computer",
			age:      60 * time.Hour,
		},
		{
			title:    "Renewable Energy Surpasses Fossil Fuels in Power Generation",
			content:  "For the first time in history, renewable energy sources have generated more electricity than fossil fuels in several major economies. This milestone represents a significant step toward global sustainability goals.",
			category: "Environment",
			source:   "Green Energy News",
			url:      "https://example.com/renewable-milestone",
			age:      96 * time.Hour,
		},
		{
			title:    "Archaeological Team Uncovers Ancient Civilization Artifacts",
			content:  "Archaeologists working in a remote region have discovered artifacts from a previously unknown ancient civilization. The findings include intricate pottery, tools, and evidence of advanced agricultural practices dating back over 5,000 years.",
			category: "History",
			source:   "Archaeology Monthly",
			url:      "https://example.com/ancient-discovery",
			age:      120 * time.Hour,
		},
	}

	docs := make([]store.Document, 0, len(samples))
	for _, s := range samples {
		docs = append(docs, store.Document{
			"_id":            bson.NewObjectID(),
			"title":          s.title,
			"content":        s.content,
			"category":       s.category,
			"source":         s.source,
			"url":            s.url,
			"published_date": now.Add(-s.age),
		})
	}
	return docs
}
