package store

import (
	"context"

	"github.com/MKhiriev/go-posts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PostRepository is the storage accessor for the posts table. Every method
// runs a single statement on one pooled connection.
type PostRepository interface {
	// ListPublished returns up to five posts with published = true.
	// Zero rows yields ErrNoPublishedPosts.
	ListPublished(ctx context.Context) ([]models.Post, error)

	// GetByID returns the post with the given id or ErrPostNotFound.
	GetByID(ctx context.Context, id int64) (models.Post, error)

	// Insert stores a new unpublished post. The returned payload keeps the
	// submitted title and body and carries the generated ID.
	Insert(ctx context.Context, post models.NewPost) (models.NewPost, error)

	// Publish sets published = true and returns the updated row, or
	// ErrPostNotFound.
	Publish(ctx context.Context, id int64) (models.Post, error)

	// Delete removes the row and returns its prior state, or ErrPostNotFound.
	Delete(ctx context.Context, id int64) (models.Post, error)
}

// ErrorClassificator maps driver specific errors onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
