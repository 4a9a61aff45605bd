package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/IRM/internal/config"
	"github.com/JonMunkholm/IRM/internal/core"
)

// Run builds the service and server from cfg and serves until ctx is
// cancelled, then shuts down within cfg.Server.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config) error {
	service, err := core.NewService(cfg)
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}

	slog.Info("label catalog loaded",
		"base_language", service.Catalog().Base(),
		"languages", service.Catalog().Languages(),
	)

	server := NewServer(service, cfg)

	// Background jobs stop with the server.
	jobCtx, cancelJobs := context.WithCancel(context.Background())
	defer cancelJobs()
	go service.StartSessionSweeper(jobCtx, service.SessionConfig())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down...")
	cancelJobs()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server stopped")
	return nil
}
