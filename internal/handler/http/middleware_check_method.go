// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed]. A known path requested with a method it does
// not serve answers 404 Not Found instead of chi's 405, so routes are only
// visible through the methods they serve.
//
// The route tree is consulted with [chi.Mux.Match], which expands URL
// parameters and descends into mounted subrouters. If the method does match
// after all, the request goes back through the router.
//
// chi hands the handler down to mounted subrouters that have none:
//
//	router := chi.NewRouter()
//	router.Route("/posts", ...)
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
