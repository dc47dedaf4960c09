package service

import (
	"context"

	"github.com/MKhiriev/go-posts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PostService mediates between the HTTP handlers and the storage accessor.
// Methods mirror [store.PostRepository] one to one and return its errors
// unchanged.
type PostService interface {
	ListPublished(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int64) (models.Post, error)
	Create(ctx context.Context, post models.NewPost) (models.NewPost, error)
	Publish(ctx context.Context, id int64) (models.Post, error)
	Delete(ctx context.Context, id int64) (models.Post, error)
}
