package tools

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// Advertised schemas document types, defaults, and required fields for
// clients. Enforcement happens in the dispatcher, not in the transport, so
// a bad call always comes back as an error envelope instead of a protocol
// fault.

func fetchNewsSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"category": {
				Type:        "string",
				Description: "Filter news by category (e.g., Technology, Business, Sports). Substring match, case-insensitive.",
			},
			"limit": {
				Type:        "integer",
				Description: "Maximum number of articles to return",
				Default:     json.RawMessage("10"),
			},
			"days_back": {
				Type:        "integer",
				Description: "Fetch news from last N days",
				Default:     json.RawMessage("7"),
			},
		},
	}
}

func searchNewsSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:        "string",
				Description: "Search query to find in news title or content",
			},
			"limit": {
				Type:        "integer",
				Description: "Maximum number of results to return",
				Default:     json.RawMessage("10"),
			},
		},
		Required: []string{"query"},
	}
}

func categoriesSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{},
	}
}
