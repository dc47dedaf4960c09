package http

import (
	"context"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/counter"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/MKhiriev/go-posts/internal/workers"
)

// AppState is the state shared by all request handlers.
type AppState struct {
	// Counter counts completed list requests.
	Counter *counter.Counter
}

func NewAppState() *AppState {
	return &AppState{Counter: counter.New()}
}

type Handler struct {
	services   *service.Services
	state      *AppState
	dispatcher *workers.Dispatcher

	postValidator validators.Validator
	demoValidator validators.Validator

	traceIDs  *utils.UUIDGenerator
	limiter   *rateLimiter
	staticDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, state *AppState, dispatcher *workers.Dispatcher, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:      services,
		state:         state,
		dispatcher:    dispatcher,
		postValidator: validators.NewPostValidator(),
		demoValidator: validators.NewDemoValidator(),
		traceIDs:      utils.NewUUIDGenerator(),
		staticDir:     cfg.StaticDir,
		logger:        logger,
	}
	if cfg.RateLimitRPS > 0 {
		h.limiter = newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	return h
}

// BackgroundWorkers returns the workers the handler needs while serving.
// With rate limiting enabled that is the janitor dropping idle client buckets.
func (h *Handler) BackgroundWorkers() []workers.Worker {
	if h.limiter == nil {
		return nil
	}

	return []workers.Worker{
		workers.NewPeriodicWorker("rate-limit-janitor", h.limiter.cleanupEvery, func(context.Context) {
			if removed := h.limiter.cleanup(); removed > 0 {
				h.logger.Debug().Int("removed", removed).Msg("idle rate limit buckets dropped")
			}
		}, h.logger),
	}
}
