package core

// scheduler.go provides background maintenance for the session registry.
//
// Sessions live in memory only. The sweeper periodically drops sessions that
// have been idle longer than the configured timeout so abandoned browser
// tabs do not hold their records forever. It is context-aware and stops on
// shutdown.

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper defaults applied when a SweepConfig field is zero.
const (
	DefaultSessionIdleTimeout = 12 * time.Hour
	DefaultSweepInterval      = 10 * time.Minute
)

// SweepConfig holds configuration for the session sweeper.
type SweepConfig struct {
	IdleTimeout   time.Duration // Drop sessions idle longer than this (default: 12h)
	CheckInterval time.Duration // How often to sweep (default: 10m)
}

func (c SweepConfig) withDefaults() SweepConfig {
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = DefaultSessionIdleTimeout
	}
	if c.CheckInterval <= 0 {
		c.CheckInterval = DefaultSweepInterval
	}
	return c
}

// StartSessionSweeper removes idle sessions every CheckInterval until ctx is
// cancelled.
func (s *Service) StartSessionSweeper(ctx context.Context, cfg SweepConfig) {
	cfg = cfg.withDefaults()

	slog.Info("session sweeper started",
		"idle_timeout", cfg.IdleTimeout,
		"check_interval", cfg.CheckInterval,
	)

	ticker := time.NewTicker(cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("session sweeper stopped")
			return
		case <-ticker.C:
			s.runSweep(cfg)
		}
	}
}

// runSweep performs one sweep cycle.
func (s *Service) runSweep(cfg SweepConfig) int {
	start := time.Now()
	removed := s.sessions.Sweep(cfg.IdleTimeout)

	if removed > 0 {
		slog.Info("idle sessions removed",
			"sessions_removed", removed,
			"sessions_active", s.sessions.Len(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	} else {
		slog.Debug("session sweep found nothing to remove", "sessions_active", s.sessions.Len())
	}
	return removed
}
