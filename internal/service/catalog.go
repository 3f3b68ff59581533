package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/openshelf/catalog/internal/model"
	"github.com/openshelf/catalog/internal/store"
)

// GenreStore is the slice of the genre repository the catalog flows need.
type GenreStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (model.Genre, error)
	All(ctx context.Context) ([]model.Genre, error)
	FindOneByName(ctx context.Context, name string) (model.Genre, error)
	Insert(ctx context.Context, genre model.Genre) (uuid.UUID, error)
	UpdateByID(ctx context.Context, id uuid.UUID, genre model.Genre) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// BookStore is the slice of the book repository the catalog flows need.
type BookStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (model.Book, error)
	All(ctx context.Context) ([]model.Book, error)
	FindByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error)
	Count(ctx context.Context) (int, error)
}

// CatalogService implements the catalog's genre and book flows.
//
// The check-then-act sequences here (uniqueness pre-check before insert,
// dependents check before delete) are not atomic: two concurrent requests can
// interleave between the check and the write. That window is an accepted
// limitation of the design and is not guarded by locks or transactions.
type CatalogService struct {
	genres GenreStore
	books  BookStore
}

// NewCatalogService constructs a CatalogService over the given stores.
func NewCatalogService(genres GenreStore, books BookStore) *CatalogService {
	return &CatalogService{genres: genres, books: books}
}

// ListGenres returns all genres ordered ascending by name.
func (s *CatalogService) ListGenres(ctx context.Context) ([]model.Genre, error) {
	return s.genres.All(ctx)
}

// ListBooks returns all books ordered ascending by title.
func (s *CatalogService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.books.All(ctx)
}

// GenreWithBooks fetches a genre and its dependent books concurrently and
// joins both results before returning.
//
// A missing genre is reported as store.ErrNotFound after the join; callers
// decide whether that is a hard 404 (detail, update form) or a soft redirect
// (delete form). Any other failure from either fetch aborts the pair.
func (s *CatalogService) GenreWithBooks(ctx context.Context, id uuid.UUID) (model.Genre, []model.Book, error) {
	var (
		genre model.Genre
		found bool
		books []model.Book
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fetched, err := s.genres.FindByID(gctx, id)
		if err != nil {
			if store.IsNotFound(err) {
				return nil
			}
			return err
		}
		genre = fetched
		found = true
		return nil
	})

	g.Go(func() error {
		fetched, err := s.books.FindByGenre(gctx, id)
		if err != nil {
			return err
		}
		books = fetched
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.Genre{}, nil, err
	}

	if !found {
		return model.Genre{}, nil, store.ErrNotFound
	}
	return genre, books, nil
}

// FindGenre returns a single genre by id, or store.ErrNotFound.
func (s *CatalogService) FindGenre(ctx context.Context, id uuid.UUID) (model.Genre, error) {
	return s.genres.FindByID(ctx, id)
}

// CreateGenre persists a genre with the given sanitized name, unless one with
// exactly that name already exists.
//
// Creation is idempotent on the name: when a genre with the same name is
// found, the existing genre is returned and no new record is created.
func (s *CatalogService) CreateGenre(ctx context.Context, name string) (model.Genre, error) {
	existing, err := s.genres.FindOneByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !store.IsNotFound(err) {
		return model.Genre{}, err
	}

	genre := model.Genre{Name: name}
	id, err := s.genres.Insert(ctx, genre)
	if err != nil {
		return model.Genre{}, err
	}
	genre.ID = id
	return genre, nil
}

// DeleteGenre removes the genre with the given id unless books still
// reference it.
//
// When dependent books exist the delete is refused: the genre and its books
// are returned with deleted=false so the caller can re-render the
// confirmation view. When no books depend on it, the genre is removed; a
// genre that vanished between prompt and submit is treated as already
// deleted, not as an error.
func (s *CatalogService) DeleteGenre(ctx context.Context, id uuid.UUID) (model.Genre, []model.Book, bool, error) {
	genre, books, err := s.GenreWithBooks(ctx, id)
	if err != nil && !store.IsNotFound(err) {
		return model.Genre{}, nil, false, err
	}

	if len(books) > 0 {
		return genre, books, false, nil
	}

	if err := s.genres.DeleteByID(ctx, id); err != nil && !store.IsNotFound(err) {
		return model.Genre{}, nil, false, err
	}
	return genre, nil, true, nil
}

// UpdateGenre replaces the name of the genre stored under id. The id is taken
// from the caller and never regenerated.
func (s *CatalogService) UpdateGenre(ctx context.Context, id uuid.UUID, name string) (model.Genre, error) {
	genre := model.Genre{ID: id, Name: name}
	if err := s.genres.UpdateByID(ctx, id, genre); err != nil {
		return model.Genre{}, err
	}
	return genre, nil
}

// BookWithGenre fetches a book and then the genre it references.
func (s *CatalogService) BookWithGenre(ctx context.Context, id uuid.UUID) (model.Book, model.Genre, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return model.Book{}, model.Genre{}, err
	}

	genre, err := s.genres.FindByID(ctx, book.Genre)
	if err != nil && !store.IsNotFound(err) {
		return model.Book{}, model.Genre{}, err
	}
	return book, genre, nil
}

// Counts reports how many genres and books the catalog holds, fetching both
// totals concurrently.
func (s *CatalogService) Counts(ctx context.Context) (genreCount, bookCount int, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var countErr error
		genreCount, countErr = s.genres.Count(gctx)
		return countErr
	})

	g.Go(func() error {
		var countErr error
		bookCount, countErr = s.books.Count(gctx)
		return countErr
	})

	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	return genreCount, bookCount, nil
}
