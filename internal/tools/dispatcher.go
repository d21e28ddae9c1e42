// Package tools maps tool names to handlers and is the single trust
// boundary between transports and the query core: arguments are validated
// here, and every failure below here is converted into a well-formed error
// envelope before it can reach a transport.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"newsmcp/internal/news"
	"newsmcp/internal/store"
	"newsmcp/internal/widget"
)

// Tool names, stable and case-sensitive.
const (
	FetchNews         = "fetch_news"
	SearchNews        = "search_news"
	GetNewsCategories = "get_news_categories"
)

// Definition describes one tool for transport-level listing.
type Definition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

type handlerFunc func(ctx context.Context, raw map[string]any) (news.Envelope, error)

type entry struct {
	def Definition
	run handlerFunc
}

// Dispatcher routes tool calls to handlers over a shared read-only store.
// A nil store means the startup connection failed; every call then
// short-circuits to a not-connected envelope without touching the query
// path. Safe for concurrent use: nothing here mutates after construction.
type Dispatcher struct {
	store   store.Store
	widgets *widget.Set
	now     func() time.Time
	entries map[string]entry
	order   []string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithWidgets makes the dispatcher attach widget metadata to the responses
// of widget-capable tools. Leave unset for transports that render text only.
func WithWidgets(set *widget.Set) Option {
	return func(d *Dispatcher) { d.widgets = set }
}

// WithClock overrides the wall clock used for date-window filters.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// NewDispatcher builds the dispatcher over st. st may be nil when the
// startup connection failed; the process keeps serving error envelopes.
func NewDispatcher(st store.Store, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:   st,
		now:     time.Now,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.register(Definition{
		Name:        FetchNews,
		Description: "Fetch news articles from the news collection. Returns news with title, content, source, and published date. Supports filtering by category, date range, and limit.",
		InputSchema: fetchNewsSchema(),
	}, d.fetchNews)
	d.register(Definition{
		Name:        SearchNews,
		Description: "Search news articles by keywords in title or content",
		InputSchema: searchNewsSchema(),
	}, d.searchNews)
	d.register(Definition{
		Name:        GetNewsCategories,
		Description: "Get list of available news categories from the database",
		InputSchema: categoriesSchema(),
	}, d.categories)

	return d
}

func (d *Dispatcher) register(def Definition, run handlerFunc) {
	d.entries[def.Name] = entry{def: def, run: run}
	d.order = append(d.order, def.Name)
}

// Definitions returns the tool definitions in registration order.
func (d *Dispatcher) Definitions() []Definition {
	defs := make([]Definition, 0, len(d.order))
	for _, name := range d.order {
		defs = append(defs, d.entries[name].def)
	}
	return defs
}

// Dispatch runs the named tool and always returns a well-formed envelope.
// Unknown names, invalid arguments, a missing store connection, and query
// failures all come back as error envelopes, never as faults.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, raw map[string]any) news.Envelope {
	e, ok := d.entries[name]
	if !ok {
		slog.Warn("unknown tool requested", "tool", name)
		return news.ErrorEnvelope(news.KindUnknownTool, fmt.Sprintf("unknown tool %q", name))
	}

	if d.store == nil {
		slog.Warn("tool called while store disconnected", "tool", name)
		return news.ErrorEnvelope(news.KindNotConnected, news.NotConnectedMessage)
	}

	env, err := e.run(ctx, raw)
	if err != nil {
		kind := kindOf(err)
		slog.Error("tool execution failed", "tool", name, "kind", string(kind), "error", err)
		return news.ErrorEnvelope(kind, err.Error())
	}
	return env
}

func (d *Dispatcher) fetchNews(ctx context.Context, raw map[string]any) (news.Envelope, error) {
	args, err := parseFetchArgs(raw)
	if err != nil {
		return news.Envelope{}, err
	}

	q := news.BuildFetchQuery(args.Category, args.DaysBack, args.Limit, d.now())
	docs, err := d.store.Find(ctx, q)
	if err != nil {
		return news.Envelope{}, fmt.Errorf("fetching news: %w", err)
	}

	lc := news.ListContext{Category: args.Category, DaysBack: args.DaysBack}
	return news.ArticleListEnvelope(news.NormalizeAll(docs), lc, d.widget(widget.NewsListID)), nil
}

func (d *Dispatcher) searchNews(ctx context.Context, raw map[string]any) (news.Envelope, error) {
	args, err := parseSearchArgs(raw)
	if err != nil {
		return news.Envelope{}, err
	}

	q, err := news.BuildSearchQuery(args.Query, args.Limit)
	if err != nil {
		return news.Envelope{}, err
	}
	docs, err := d.store.Find(ctx, q)
	if err != nil {
		return news.Envelope{}, fmt.Errorf("searching news: %w", err)
	}

	lc := news.ListContext{Search: true, Query: args.Query}
	return news.ArticleListEnvelope(news.NormalizeAll(docs), lc, d.widget(widget.NewsSearchID)), nil
}

func (d *Dispatcher) categories(ctx context.Context, raw map[string]any) (news.Envelope, error) {
	if err := parseEmptyArgs(raw); err != nil {
		return news.Envelope{}, err
	}

	counts, err := d.store.CategoryCounts(ctx)
	if err != nil {
		return news.Envelope{}, fmt.Errorf("getting categories: %w", err)
	}
	return news.CategoryEnvelope(counts), nil
}

// widget resolves the widget for a tool, or nil when this dispatcher was
// built without widget support.
func (d *Dispatcher) widget(id string) *widget.Widget {
	if d.widgets == nil {
		return nil
	}
	w, ok := d.widgets.ByID(id)
	if !ok {
		return nil
	}
	return &w
}

func kindOf(err error) news.ErrorKind {
	var argErr *news.ArgumentError
	if errors.As(err, &argErr) {
		return news.KindInvalidArgument
	}
	return news.KindQueryError
}
