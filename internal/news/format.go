package news

import (
	"fmt"
	"strings"
)

const previewChars = 200

// FormatArticleList renders articles as plain text for transports without
// widget rendering. Content is truncated to a short preview; the structured
// payload keeps the full text.
func FormatArticleList(articles []Article) string {
	var b strings.Builder
	for i, a := range articles {
		if i > 0 {
			b.WriteString("\n")
		}
		title := a.Title
		if title == "" {
			title = "Untitled"
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
		fmt.Fprintf(&b, "   Category: %s | Source: %s | Published: %s\n",
			orUnknown(a.Category), orUnknown(a.Source), a.PublishedDate)
		fmt.Fprintf(&b, "   %s\n", Truncate(a.Content, previewChars))
		if a.URL != "" {
			fmt.Fprintf(&b, "   Read more: %s\n", a.URL)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
