package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/MKhiriev/go-posts/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher() *workers.Dispatcher {
	return workers.NewDispatcher(2, time.Second)
}

// TestNewHandlers_HTTP verifies that an HTTP address yields an HTTP handler.
func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:8080"}

	h, err := NewHandlers(&service.Services{}, newTestDispatcher(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that a missing address is rejected.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, newTestDispatcher(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_IndependentInstances verifies that two calls produce
// independent handlers.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:8080"}

	h1, err1 := NewHandlers(&service.Services{}, newTestDispatcher(), cfg, logger.Nop())
	h2, err2 := NewHandlers(&service.Services{}, newTestDispatcher(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}

// TestHandlers_BackgroundWorkers verifies that the rate limit janitor is only
// registered when rate limiting is enabled.
func TestHandlers_BackgroundWorkers(t *testing.T) {
	off, err := NewHandlers(&service.Services{}, newTestDispatcher(),
		config.Server{HTTPAddress: "127.0.0.1:8080"}, logger.Nop())
	require.NoError(t, err)
	assert.Empty(t, off.BackgroundWorkers())

	on, err := NewHandlers(&service.Services{}, newTestDispatcher(),
		config.Server{HTTPAddress: "127.0.0.1:8080", RateLimitRPS: 5, RateLimitBurst: 10}, logger.Nop())
	require.NoError(t, err)
	assert.Len(t, on.BackgroundWorkers(), 1)
}
