package service

import (
	"context"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/models"
)

type postService struct {
	postRepository store.PostRepository

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

func (p *postService) ListPublished(ctx context.Context) ([]models.Post, error) {
	return p.postRepository.ListPublished(ctx)
}

func (p *postService) GetByID(ctx context.Context, id int64) (models.Post, error) {
	return p.postRepository.GetByID(ctx, id)
}

func (p *postService) Create(ctx context.Context, post models.NewPost) (models.NewPost, error) {
	return p.postRepository.Insert(ctx, post)
}

func (p *postService) Publish(ctx context.Context, id int64) (models.Post, error) {
	return p.postRepository.Publish(ctx, id)
}

func (p *postService) Delete(ctx context.Context, id int64) (models.Post, error) {
	return p.postRepository.Delete(ctx, id)
}
