package handler

import (
	"github.com/openshelf/catalog/internal/server"
	"github.com/openshelf/catalog/internal/service"
)

// Handlers is a container that groups all HTTP handlers, keeping router setup
// to a single object.
type Handlers struct {
	Genre  *GenreHandler  // Genre serves the genre CRUD pages.
	Book   *BookHandler   // Book serves the catalog index and read-only book pages.
	Health *HealthHandler // Health serves the service health endpoint.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Genre:  NewGenreHandler(s, services.Catalog),
		Book:   NewBookHandler(s, services.Catalog),
		Health: NewHealthHandler(s),
	}
}
