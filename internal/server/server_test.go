package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsmcp/internal/news"
)

func TestToCallResult(t *testing.T) {
	env := news.Envelope{
		Text: "Found 1 news articles",
		Data: map[string]any{"count": 1},
		Meta: map[string]any{"openai/widgetAccessible": true},
	}
	res := toCallResult(env)

	if res.IsError {
		t.Fatal("success envelope should not be marked as error")
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(res.Content))
	}
	if res.StructuredContent == nil {
		t.Fatal("structured content missing")
	}
	if res.Meta["openai/widgetAccessible"] != true {
		t.Fatalf("meta not carried over: %v", res.Meta)
	}
}

func TestToCallResultError(t *testing.T) {
	env := news.ErrorEnvelope(news.KindQueryError, "find failed")
	res := toCallResult(env)
	if !res.IsError {
		t.Fatal("error envelope should set IsError")
	}
	if res.Meta != nil {
		t.Fatal("error result should carry no meta")
	}
}

func TestDecodeArguments(t *testing.T) {
	args, err := decodeArguments(json.RawMessage(`{"limit": 3, "category": "tech"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args["category"] != "tech" {
		t.Fatalf("unexpected arguments: %v", args)
	}

	if args, err := decodeArguments(nil); err != nil || args != nil {
		t.Fatalf("nil arguments should decode to nil, got %v, %v", args, err)
	}

	if _, err := decodeArguments(json.RawMessage(`[1,2]`)); err == nil {
		t.Fatal("non-object arguments should be rejected")
	}
}

func TestCORSPreflight(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight should not reach the wrapped handler")
	})
	h := withCORS(inner)

	req := httptest.NewRequest(http.MethodOptions, "/mcp", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS origin header")
	}
}

func TestCORSPassesThrough(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	h := withCORS(inner)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))
	if !called {
		t.Fatal("non-preflight request should reach the wrapped handler")
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS origin header on pass-through")
	}
}
