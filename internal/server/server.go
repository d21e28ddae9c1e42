// Package server binds the tool dispatcher to the Model Context Protocol.
// It is deliberately thin: message framing and type conversion only; every
// design decision about queries, payloads, and errors lives below it.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"newsmcp/internal/news"
	"newsmcp/internal/tools"
	"newsmcp/internal/widget"
)

// Name identifies this server to MCP clients.
const Name = "mongodb-news-mcp"

// Server wraps an MCP server around a dispatcher. The same Server backs
// both the stdio and the streamable-HTTP transports.
type Server struct {
	dispatcher *tools.Dispatcher
	mcp        *mcp.Server
}

// New builds the MCP server: one tool registration per dispatcher
// definition, plus widget resources when a widget set is provided.
func New(d *tools.Dispatcher, widgets *widget.Set, version string) *Server {
	s := &Server{
		dispatcher: d,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    Name,
			Version: version,
		}, nil),
	}

	for _, def := range d.Definitions() {
		s.mcp.AddTool(&mcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}, s.callTool(def.Name))
	}

	if widgets != nil {
		for _, w := range widgets.All() {
			s.mcp.AddResource(&mcp.Resource{
				URI:      w.TemplateURI,
				Name:     w.ID,
				Title:    w.Title,
				MIMEType: widget.MIMEType,
			}, widgetResource(w))
		}
	}

	return s
}

// Run serves MCP over stdio until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler exposes the server over the streamable HTTP transport with
// permissive CORS for local widget development.
func (s *Server) HTTPHandler() http.Handler {
	h := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
	return withCORS(h)
}

// callTool adapts one dispatcher tool to the MCP handler signature. The
// dispatcher owns validation and error conversion, so the handler never
// returns a protocol error for a bad call.
func (s *Server) callTool(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := decodeArguments(req.Params.Arguments)
		if err != nil {
			env := news.ErrorEnvelope(news.KindInvalidArgument, err.Error())
			return toCallResult(env), nil
		}
		env := s.dispatcher.Dispatch(ctx, name, args)
		return toCallResult(env), nil
	}
}

func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("arguments must be an object: %w", err)
	}
	return args, nil
}

func toCallResult(env news.Envelope) *mcp.CallToolResult {
	res := &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: env.Text}},
		StructuredContent: env.Data,
	}
	if _, failed := env.Data["error"]; failed {
		res.IsError = true
	}
	if env.Meta != nil {
		res.Meta = mcp.Meta(env.Meta)
	}
	return res
}

func widgetResource(w widget.Widget) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      w.TemplateURI,
				MIMEType: widget.MIMEType,
				Text:     w.HTML,
			}},
		}, nil
	}
}
