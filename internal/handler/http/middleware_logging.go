package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		log.WithLevel(accessLogLevel(lw.Status())).
			Str("uri", uri).
			Str("method", method).
			Str("route", route).
			Int("status", lw.Status()).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
