package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/faq-service/internal/infra/config"
	"github.com/yanqian/faq-service/internal/infra/observability"
)

const shutdownTimeout = 10 * time.Second

// App encapsulates the HTTP server lifecycle.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	server          *http.Server
	shutdownTracing observability.ShutdownFunc
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, shutdownTracing observability.ShutdownFunc) *App {
	return &App{
		cfg:             cfg,
		logger:          logger.With("component", "bootstrap"),
		server:          server,
		shutdownTracing: shutdownTracing,
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// server fails. In-flight requests get shutdownTimeout to drain, then
// buffered spans are flushed.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := a.server.Shutdown(shutdownCtx)
		return errors.Join(err, a.flushTraces(shutdownCtx))
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.Join(err, a.flushTraces(shutdownCtx))
	}
}

func (a *App) flushTraces(ctx context.Context) error {
	if a.shutdownTracing == nil {
		return nil
	}
	if err := a.shutdownTracing(ctx); err != nil {
		a.logger.Error("failed to flush traces", "error", err)
		return err
	}
	return nil
}
