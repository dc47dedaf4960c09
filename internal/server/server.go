package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/handler"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer builds the HTTP server around handlers. background is started
// together with the listener and stopped with it.
func NewServer(handlers *handler.Handlers, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	if background == nil {
		background = workers.NewWorkers()
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:         background,
		shutdownTimeout: cfg.RequestTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	s.httpServer.Shutdown(ctx)
}

// run serves until ctx is done or the listener fails.
func (s *server) run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.workers.Run(ctx)
	s.logger.Info().Int("workers", s.workers.Len()).Msg("background workers started")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
		s.Shutdown()
		err = <-serveErr
		s.logger.Info().Msg("server Shutdown gracefully")
	case err = <-serveErr:
		s.logger.Err(err).Msg("HTTP server stopped")
	}

	return err
}
