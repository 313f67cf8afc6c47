package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"beacon/internal/logging"
	mcpserver "beacon/internal/mcp"
)

var serveFlags struct {
	httpAddr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio by default, --http for streamable HTTP)",
	Long: `Starts the beacon MCP server. By default it speaks JSON-RPC over
stdin/stdout for chat clients that spawn the server as a subprocess; a
parent-process watchdog shuts it down when the client goes away.

With --http, the server listens on the given address instead, using the
streamable HTTP transport with per-session bookkeeping and a /healthz
endpoint.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.httpAddr, "http", "", "Serve over streamable HTTP on this address (e.g. :8080) instead of stdio")
}

func runServe(cmd *cobra.Command, _ []string) error {
	st, err := loadStore()
	if err != nil {
		return err
	}
	srv := mcpserver.NewServer(st)
	logger := logging.New("serve")

	if serveFlags.httpAddr != "" {
		return serveHTTP(cmd.Context(), srv, serveFlags.httpAddr, logger)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logger.Info("starting beacon MCP server over stdio (parent watchdog active)", "instance", srv.InstanceID)
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

func serveHTTP(ctx context.Context, srv *mcpserver.Server, addr string, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := mcpserver.NewSessionRegistry()
	handler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return srv.MCPServer },
		nil,
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","instance":%q,"sessions":%d}`, srv.InstanceID, registry.Len())
	})
	r.Handle("/mcp", registry.Middleware(handler))

	httpSrv := &http.Server{Addr: addr, Handler: r}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting beacon MCP server over HTTP", "addr", addr, "instance", srv.InstanceID)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down HTTP server", "live_sessions", registry.Len())
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
