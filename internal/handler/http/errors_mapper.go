package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/MKhiriev/go-posts/internal/workers"
)

var errorStatusMap = map[error]int{
	validators.ErrMissingTitle:    http.StatusBadRequest,
	validators.ErrMissingBody:     http.StatusBadRequest,
	validators.ErrMissingUsername: http.StatusBadRequest,

	store.ErrPostNotFound:     http.StatusNotFound,
	store.ErrNoPublishedPosts: http.StatusNotFound,

	store.ErrAcquiringConnection: http.StatusInternalServerError,
	store.ErrConstraintViolation: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:    http.StatusInternalServerError,
	store.ErrExecutingQuery:      http.StatusInternalServerError,
	store.ErrScanningRow:         http.StatusInternalServerError,
	store.ErrScanningRows:        http.StatusInternalServerError,

	workers.ErrPoolExhausted: http.StatusInternalServerError,
	workers.ErrCallPanicked:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
