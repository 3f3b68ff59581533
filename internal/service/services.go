package service

import (
	"github.com/openshelf/catalog/internal/repository"
	"github.com/openshelf/catalog/internal/server"
)

// Services is a container that groups all service instances.
type Services struct {
	Catalog *CatalogService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Catalog: NewCatalogService(repos.Genres, repos.Books),
	}, nil
}
