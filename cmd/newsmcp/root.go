package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"newsmcp/internal/config"
	"newsmcp/internal/seed"
	"newsmcp/internal/server"
	"newsmcp/internal/store"
	"newsmcp/internal/tools"
	"newsmcp/internal/widget"
)

var version = "dev"

var flagAddr string

var rootCmd = &cobra.Command{
	Use:   "newsmcp",
	Short: "MongoDB-backed news tools over the Model Context Protocol",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP over stdio (plain-text responses)",
	RunE:  runServe,
}

var serveHTTPCmd = &cobra.Command{
	Use:   "serve-http",
	Short: "Serve MCP over streamable HTTP with widget support",
	RunE:  runServeHTTP,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the news collection with sample articles and indexes",
	RunE:  runSeed,
}

func init() {
	serveHTTPCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides NEWSMCP_HTTP_ADDR)")
	rootCmd.AddCommand(serveCmd, serveHTTPCmd, seedCmd)
}

// setupLogging sends logs to stderr; stdout belongs to the stdio transport.
func setupLogging() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// connectStore dials MongoDB. On failure the process keeps running with a
// nil store: every tool call then returns a not-connected envelope, and an
// operator restart is the recovery path.
func connectStore(ctx context.Context, cfg *config.Config) store.Store {
	slog.Info("connecting to MongoDB", "uri", cfg.MongoURI, "database", cfg.Database, "collection", cfg.Collection)
	m, err := store.Connect(ctx, cfg.MongoURI, cfg.Database, cfg.Collection)
	if err != nil {
		slog.Error("failed to connect to MongoDB, tools will return errors", "error", err)
		return nil
	}
	slog.Info("connected to MongoDB")
	return m
}

func runServe(cmd *cobra.Command, args []string) error {
	setupLogging()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := connectStore(ctx, cfg)
	d := tools.NewDispatcher(st)
	srv := server.New(d, nil, version)

	slog.Info("serving MCP over stdio", "server", server.Name, "version", version)
	return srv.Run(ctx)
}

func runServeHTTP(cmd *cobra.Command, args []string) error {
	setupLogging()
	cfg := config.Load()
	addr := cfg.HTTPAddr
	if flagAddr != "" {
		addr = flagAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := connectStore(ctx, cfg)
	widgets := widget.NewSet(cfg.AssetBaseURL)
	d := tools.NewDispatcher(st, tools.WithWidgets(widgets))
	srv := server.New(d, widgets, version)

	mux := http.NewServeMux()
	mux.Handle("/mcp", srv.HTTPHandler())

	httpSrv := &http.Server{Addr: addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving MCP over HTTP", "addr", addr, "assets", cfg.AssetBaseURL)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("shutting down")
		if err := httpSrv.Shutdown(context.Background()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	setupLogging()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return seed.Run(ctx, cfg.MongoURI, cfg.Database, cfg.Collection)
}
