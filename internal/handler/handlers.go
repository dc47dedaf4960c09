package handler

import (
	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/handler/http"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/MKhiriev/go-posts/internal/workers"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, dispatcher *workers.Dispatcher, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, http.NewAppState(), dispatcher, cfg, logger),
	}, nil
}

// BackgroundWorkers collects the workers of every transport handler.
func (h *Handlers) BackgroundWorkers() []workers.Worker {
	return h.HTTP.BackgroundWorkers()
}
