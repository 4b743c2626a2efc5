package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"string-analyzer/internal/bootstrap"
	"string-analyzer/internal/shared/config"
	"string-analyzer/internal/shared/errors"
	"string-analyzer/internal/shared/server"
	"string-analyzer/internal/shared/telemetry"
)

func main() {
	if err := run(); err != nil {
		telemetry.Error("server.exit", map[string]any{"error": err.Error()})
		telemetry.Sync()
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		return errors.Wrap(err, "bootstrap")
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              server.Addr(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		telemetry.Info("server.start", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	telemetry.Info("server.shutdown", map[string]any{"timeout_ms": cfg.ShutdownTimeout.Milliseconds()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
