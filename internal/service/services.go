package service

import (
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/store"
)

type Services struct {
	PostService PostService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		PostService: NewPostService(storages.PostRepository, logger),
	}
}
