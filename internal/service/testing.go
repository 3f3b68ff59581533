package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/openshelf/catalog/internal/model"
	"github.com/openshelf/catalog/internal/store"
)

// This file provides in-memory store fakes for tests. They live in the main
// package (not a _test file) so handler tests can reuse them.

// MemGenreStore is an in-memory GenreStore.
//
// FailWith, when set, is returned by every operation; tests use it to
// simulate infrastructure failures.
type MemGenreStore struct {
	mu       sync.Mutex
	genres   map[uuid.UUID]model.Genre
	FailWith error
}

// NewMemGenreStore creates an empty in-memory genre store.
func NewMemGenreStore() *MemGenreStore {
	return &MemGenreStore{genres: make(map[uuid.UUID]model.Genre)}
}

// Seed inserts a genre under a fixed id, bypassing business rules.
func (m *MemGenreStore) Seed(genre model.Genre) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.genres[genre.ID] = genre
}

// Len reports how many genres are stored.
func (m *MemGenreStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.genres)
}

func (m *MemGenreStore) FindByID(_ context.Context, id uuid.UUID) (model.Genre, error) {
	if m.FailWith != nil {
		return model.Genre{}, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	genre, ok := m.genres[id]
	if !ok {
		return model.Genre{}, store.ErrNotFound
	}
	return genre, nil
}

func (m *MemGenreStore) All(_ context.Context) ([]model.Genre, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	genres := make([]model.Genre, 0, len(m.genres))
	for _, genre := range m.genres {
		genres = append(genres, genre)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].Name < genres[j].Name })
	return genres, nil
}

func (m *MemGenreStore) FindOneByName(_ context.Context, name string) (model.Genre, error) {
	if m.FailWith != nil {
		return model.Genre{}, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, genre := range m.genres {
		if genre.Name == name {
			return genre, nil
		}
	}
	return model.Genre{}, store.ErrNotFound
}

func (m *MemGenreStore) Insert(_ context.Context, genre model.Genre) (uuid.UUID, error) {
	if m.FailWith != nil {
		return uuid.Nil, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New()
	genre.ID = id
	m.genres[id] = genre
	return id, nil
}

func (m *MemGenreStore) UpdateByID(_ context.Context, id uuid.UUID, genre model.Genre) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.genres[id]; !ok {
		return store.ErrNotFound
	}
	genre.ID = id
	m.genres[id] = genre
	return nil
}

func (m *MemGenreStore) DeleteByID(_ context.Context, id uuid.UUID) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.genres[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.genres, id)
	return nil
}

func (m *MemGenreStore) Count(_ context.Context) (int, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return m.Len(), nil
}

// MemBookStore is an in-memory BookStore.
type MemBookStore struct {
	mu       sync.Mutex
	books    map[uuid.UUID]model.Book
	FailWith error
}

// NewMemBookStore creates an empty in-memory book store.
func NewMemBookStore() *MemBookStore {
	return &MemBookStore{books: make(map[uuid.UUID]model.Book)}
}

// Seed inserts a book under a fixed id.
func (m *MemBookStore) Seed(book model.Book) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.books[book.ID] = book
}

func (m *MemBookStore) FindByID(_ context.Context, id uuid.UUID) (model.Book, error) {
	if m.FailWith != nil {
		return model.Book{}, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.books[id]
	if !ok {
		return model.Book{}, store.ErrNotFound
	}
	return book, nil
}

func (m *MemBookStore) All(_ context.Context) ([]model.Book, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	books := make([]model.Book, 0, len(m.books))
	for _, book := range m.books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	return books, nil
}

func (m *MemBookStore) FindByGenre(_ context.Context, genreID uuid.UUID) ([]model.Book, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var books []model.Book
	for _, book := range m.books {
		if book.Genre == genreID {
			books = append(books, book)
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	return books, nil
}

func (m *MemBookStore) Count(_ context.Context) (int, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.books), nil
}
