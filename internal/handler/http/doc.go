// Package http implements the HTTP transport layer of the posts service.
//
// Handler wires the /posts CRUD routes and the /tests demonstration routes
// onto a chi router. Storage-bound calls are run through the bounded
// workers.Dispatcher; the list endpoint also bumps the request counter held
// in AppState. Request tracing, access logging, gzip and per-client rate
// limiting are applied as middleware before a request reaches a handler.
package http
