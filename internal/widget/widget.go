// Package widget describes the UI widgets attached to widget-capable tool
// responses. The HTML shells reference externally hosted assets; nothing in
// this package generates or serves the assets themselves.
package widget

import (
	"fmt"
	"strings"
)

// MIMEType is the content type ChatGPT expects for embedded widget shells.
const MIMEType = "text/html+skybridge"

// Widget identifiers, also used as MCP resource names.
const (
	NewsListID   = "news-list"
	NewsSearchID = "news-search"
)

// Widget is one renderable UI template: a stable ui:// URI plus the static
// HTML shell that loads the widget's stylesheet and script.
type Widget struct {
	ID          string
	Title       string
	TemplateURI string
	HTML        string
	Invoking    string
	Invoked     string
}

// Resource returns the embedded-resource form of the widget used in
// tool-result metadata.
func (w Widget) Resource() map[string]any {
	return map[string]any{
		"uri":      w.TemplateURI,
		"mimeType": MIMEType,
		"text":     w.HTML,
	}
}

// Set holds the known widgets, addressable by id and by template URI.
type Set struct {
	byID  map[string]Widget
	byURI map[string]Widget
	order []string
}

// NewSet builds the widget set with shells resolved against assetBaseURL.
func NewSet(assetBaseURL string) *Set {
	base := strings.TrimRight(assetBaseURL, "/")
	widgets := []Widget{
		{
			ID:          NewsListID,
			Title:       "News Feed",
			TemplateURI: "ui://widget/news-list.html",
			HTML:        shellHTML(base, NewsListID),
			Invoking:    "Fetching news articles...",
			Invoked:     "Here are your news articles",
		},
		{
			ID:          NewsSearchID,
			Title:       "Search Results",
			TemplateURI: "ui://widget/news-search.html",
			HTML:        shellHTML(base, NewsSearchID),
			Invoking:    "Searching news...",
			Invoked:     "Search complete",
		},
	}

	s := &Set{
		byID:  make(map[string]Widget, len(widgets)),
		byURI: make(map[string]Widget, len(widgets)),
	}
	for _, w := range widgets {
		s.byID[w.ID] = w
		s.byURI[w.TemplateURI] = w
		s.order = append(s.order, w.ID)
	}
	return s
}

// ByID looks a widget up by identifier.
func (s *Set) ByID(id string) (Widget, bool) {
	w, ok := s.byID[id]
	return w, ok
}

// ByURI looks a widget up by template URI.
func (s *Set) ByURI(uri string) (Widget, bool) {
	w, ok := s.byURI[uri]
	return w, ok
}

// All returns the widgets in registration order.
func (s *Set) All() []Widget {
	widgets := make([]Widget, 0, len(s.order))
	for _, id := range s.order {
		widgets = append(widgets, s.byID[id])
	}
	return widgets
}

func shellHTML(base, id string) string {
	return fmt.Sprintf(
		"<div id=%q></div>\n<link rel=\"stylesheet\" href=\"%s/%s.css\">\n<script type=\"module\" src=\"%s/%s.js\"></script>",
		id+"-root", base, id, base, id,
	)
}
