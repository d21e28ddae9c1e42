package news

import (
	"fmt"

	"newsmcp/internal/store"
	"newsmcp/internal/widget"
)

// ErrorKind labels the failure classes surfaced in error envelopes.
type ErrorKind string

const (
	KindNotConnected    ErrorKind = "not_connected"
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindUnknownTool     ErrorKind = "unknown_tool"
	KindQueryError      ErrorKind = "query_error"
)

// NotConnectedMessage is the data.error payload for calls made while the
// store is unreachable.
const NotConnectedMessage = "Database not connected"

// Envelope is the response shape every tool invocation produces: a human
// summary, a structured payload, and optional widget metadata.
type Envelope struct {
	Text string
	Data map[string]any
	Meta map[string]any
}

// ListContext carries the arguments that parameterize an article-list
// envelope's summary text and payload shape.
type ListContext struct {
	// Search selects the search_news payload shape; otherwise fetch_news.
	Search   bool
	Query    string
	Category string
	DaysBack int
}

// ArticleListEnvelope wraps a normalized article list. When w is non-nil
// the envelope carries the widget metadata block; otherwise the text falls
// back to a full formatted listing for plain-text transports.
func ArticleListEnvelope(articles []Article, lc ListContext, w *widget.Widget) Envelope {
	var env Envelope
	if lc.Search {
		env.Text = fmt.Sprintf("Found %d articles matching '%s'", len(articles), lc.Query)
		env.Data = map[string]any{
			"articles": articles,
			"query":    lc.Query,
			"count":    len(articles),
		}
	} else {
		env.Text = fmt.Sprintf("Found %d news articles", len(articles))
		if lc.Category != "" {
			env.Text += fmt.Sprintf(" in category '%s'", lc.Category)
		}
		category := lc.Category
		if category == "" {
			category = "All"
		}
		env.Data = map[string]any{
			"articles":  articles,
			"category":  category,
			"count":     len(articles),
			"days_back": lc.DaysBack,
		}
	}

	if w != nil {
		env.Meta = widgetMeta(*w, widgetDescription(len(articles), lc))
	} else if len(articles) > 0 {
		env.Text += "\n\n" + FormatArticleList(articles)
	}
	return env
}

// CategoryEnvelope wraps the category aggregation result.
func CategoryEnvelope(categories []store.CategoryCount) Envelope {
	if categories == nil {
		categories = []store.CategoryCount{}
	}
	return Envelope{
		Text: fmt.Sprintf("Found %d categories", len(categories)),
		Data: map[string]any{
			"categories": categories,
			"total":      len(categories),
		},
	}
}

// ErrorEnvelope wraps a failure into a well-formed envelope. Construction
// never fails; every upstream error is reduced to a kind and a message
// before reaching this point.
func ErrorEnvelope(kind ErrorKind, message string) Envelope {
	text := "Error: " + message
	if kind == KindNotConnected {
		text = "Error: MongoDB connection not established"
	}
	return Envelope{
		Text: text,
		Data: map[string]any{"error": message},
	}
}

func widgetMeta(w widget.Widget, description string) map[string]any {
	return map[string]any{
		"openai.com/widget":              w.Resource(),
		"openai/outputTemplate":          w.TemplateURI,
		"openai/toolInvocation/invoking": w.Invoking,
		"openai/toolInvocation/invoked":  w.Invoked,
		"openai/widgetAccessible":        true,
		"openai/widgetDescription":       description,
	}
}

func widgetDescription(count int, lc ListContext) string {
	if lc.Search {
		return fmt.Sprintf("Search results for '%s' - %d articles found", lc.Query, count)
	}
	desc := fmt.Sprintf("Displays %d news articles", count)
	if lc.Category != "" {
		desc += " from " + lc.Category
	}
	return desc
}
