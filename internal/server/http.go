package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
			IdleTimeout:       2 * cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("HTTP server listen on %s: %w", h.server.Addr, err)
	}
	return ln, nil
}

// serve blocks until the server is shut down. A shutdown is not an error.
func (h *httpServer) serve(ln net.Listener) error {
	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")

	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) {
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
