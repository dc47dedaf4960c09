// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a transport-layer client for the go-posts HTTP API.
//
// The primary abstraction is [PostsAPI], which decouples callers such as the
// command-line client from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPPostsAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-posts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PostsAPI is the client view of the /posts endpoints.
// A trace id stored in ctx with utils.WithTraceID is forwarded as X-Trace-ID.
type PostsAPI interface {
	// ListPublished returns the published posts. An empty store yields an
	// empty slice and no error.
	ListPublished(ctx context.Context) ([]models.Post, error)

	// Get returns the post with id, or [ErrNotFound].
	Get(ctx context.Context, id int64) (models.Post, error)

	// Create stores a new unpublished post. The returned value carries the id
	// the server reported in its Location header.
	Create(ctx context.Context, post models.NewPost) (models.NewPost, error)

	// Publish marks the post as published and returns it.
	Publish(ctx context.Context, id int64) (models.Post, error)

	// Delete removes the post and returns the removed record.
	Delete(ctx context.Context, id int64) (models.Post, error)

	// RequestCount returns the number of list requests the server completed.
	RequestCount(ctx context.Context) (int64, error)
}
