// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusNotFound, w.Status())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		writes     []string
		wantStatus int
		wantSize   int
		wantBody   string
	}{
		{
			name:       "implicit 200",
			writes:     []string{"No Posts Yet"},
			wantStatus: http.StatusOK,
			wantSize:   12,
			wantBody:   "No Posts Yet",
		},
		{
			name:       "explicit status kept",
			status:     http.StatusNotFound,
			writes:     []string{"No post found with id: 1"},
			wantStatus: http.StatusNotFound,
			wantSize:   24,
			wantBody:   "No post found with id: 1",
		},
		{
			name:       "size accumulates",
			writes:     []string{"[", `{"id":1}`, "]"},
			wantStatus: http.StatusOK,
			wantSize:   10,
			wantBody:   `[{"id":1}]`,
		},
		{
			name:       "empty write",
			writes:     []string{""},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rec}

			if tt.status != 0 {
				w.WriteHeader(tt.status)
			}
			for _, s := range tt.writes {
				_, err := w.Write([]byte(s))
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.Status())
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestResponseWriter_StatusDefaultsTo200(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Equal(t, http.StatusOK, w.Status())
	assert.False(t, w.wroteHeader)
	assert.Zero(t, w.size)
}

func TestResponseWriter_ProxiesHeadersToUnderlying(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Header().Set("Location", "/posts/get/1")

	assert.Equal(t, "/posts/get/1", rec.Header().Get("Location"))
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Same(t, rec, w.Unwrap())
}
