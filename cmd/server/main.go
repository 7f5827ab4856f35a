package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/proposta/internal/config"
	"github.com/rpggio/proposta/internal/domain/generation"
	"github.com/rpggio/proposta/internal/domain/session"
	"github.com/rpggio/proposta/internal/gemini"
	"github.com/rpggio/proposta/internal/logging"
	"github.com/rpggio/proposta/internal/mcp"
	"github.com/rpggio/proposta/internal/render"
	"github.com/rpggio/proposta/internal/transport"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run wires and serves the application until ctx is canceled. Every exit
// path goes through the deferred log close.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	logger, closer, err := logging.New(cfg.Log, logWriter)
	if err != nil {
		return fmt.Errorf("log file error: %w", err)
	}
	defer closer.Close()

	gen, err := gemini.New(ctx, cfg.Gemini, logger)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		return err
	}

	sess := session.New(session.Options{Logger: logger})
	genSvc := generation.NewService(gen, logger)

	mcpServer := mcp.NewServer(mcp.Config{
		Document:   sess,
		Generation: genSvc,
		TaxRate:    cfg.Pricing.TaxRate,
		Version:    version,
		Logger:     logger,
	})

	logger.Info("session started", "session_id", sess.ID, "transport", cfg.Transport.Mode, "model", cfg.Gemini.Model)

	if cfg.Transport.Mode == "stdio" {
		return runStdioMode(ctx, logger, mcpServer)
	}

	renderer, err := render.New()
	if err != nil {
		logger.Error("failed to load templates", "error", err)
		return err
	}
	router := transport.NewServer(transport.Options{
		Document:   sess,
		Generation: genSvc,
		Renderer:   renderer,
		TaxRate:    cfg.Pricing.TaxRate,
		PrintDelay: cfg.Print.Delay,
		MCP: sdkmcp.NewStreamableHTTPHandler(
			func(*http.Request) *sdkmcp.Server { return mcpServer },
			&sdkmcp.StreamableHTTPOptions{SessionTimeout: 30 * time.Minute},
		),
		Logger: logger,
	})
	return runHTTPMode(ctx, logger, router, cfg.Server)
}

func runStdioMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server) error {
	logger.Info("starting stdio transport")

	// Run blocks until stdin closes or context is canceled.
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stdio server error", "error", err)
		return err
	}
	return nil
}

func runHTTPMode(ctx context.Context, logger *slog.Logger, handler http.Handler, cfg config.ServerConfig) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		logger.Error("server error", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	return nil
}
