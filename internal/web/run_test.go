package web

import (
	"context"
	"testing"
	"time"

	"github.com/JonMunkholm/IRM/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 0
	cfg.Server.ShutdownTimeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_InvalidLanguage(t *testing.T) {
	cfg := config.Default()
	cfg.App.DefaultLanguage = "FR"

	err := Run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create service")
}
