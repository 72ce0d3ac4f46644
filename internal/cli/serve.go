package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/cmdassist/internal/config"
	httpadapter "github.com/aretw0/cmdassist/pkg/adapters/http"
	"github.com/aretw0/cmdassist/pkg/adapters/mcp"
	"github.com/aretw0/cmdassist/pkg/observability"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP API until SIGINT or SIGTERM.
func Serve(cfg config.Config, debug bool) error {
	logger, err := createLogger(cfg.Log.Level, debug)
	if err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	engine, err := createEngine(cfg, logger, debug, nil, metrics.Hooks())
	if err != nil {
		return err
	}
	defer engine.Close()

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	sessions, closeStore, err := openSessions(sigCtx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	handler, err := httpadapter.NewHandler(engine, sessions,
		httpadapter.WithMetrics(metrics.Handler()),
		httpadapter.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to build HTTP handler: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting cmdassist server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-sigCtx.Done():
		logger.Info("Start shutdown", "signal", sigCtx.Signal())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		logger.Info("Server stopped gracefully")
		return nil
	}
}

// ServeMCP runs the MCP server on stdio, or on SSE when port is positive.
func ServeMCP(cfg config.Config, debug bool, port int) error {
	logger, err := createLogger(cfg.Log.Level, debug)
	if err != nil {
		return err
	}

	engine, err := createEngine(cfg, logger, debug, nil)
	if err != nil {
		return err
	}
	defer engine.Close()

	srv := mcp.NewServer(engine, mcp.WithLogger(logger))
	if port <= 0 {
		logger.Info("Starting cmdassist MCP server (stdio)")
		return srv.ServeStdio()
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()
	return srv.ServeSSE(sigCtx, port)
}
