package repository

import (
	"github.com/openshelf/catalog/internal/server"
	"github.com/openshelf/catalog/internal/store"
)

// Collection table names. The migrations in internal/database create them.
const (
	genresTable = "genres"
	booksTable  = "books"
)

// Repositories is a container for all repository instances.
//
// It keeps router/service wiring to a single object instead of threading
// individual repositories through every constructor.
type Repositories struct {
	Genres *GenreRepository
	Books  *BookRepository
}

// NewRepositories constructs the repository container on top of the server's
// database pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Genres: NewGenreRepository(store.NewCollection(s.DB.Pool, genresTable, s.Logger)),
		Books:  NewBookRepository(store.NewCollection(s.DB.Pool, booksTable, s.Logger)),
	}
}
