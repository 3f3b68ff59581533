package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/openshelf/catalog/internal/model"
	"github.com/openshelf/catalog/internal/store"
)

// BookRepository provides typed access to the books collection.
//
// The genre handlers only ever read books (to list a genre's books and to
// guard deletes); writes exist for the seeder and the read-only book pages'
// test fixtures.
type BookRepository struct {
	coll *store.Collection
}

// NewBookRepository wraps a books collection.
func NewBookRepository(coll *store.Collection) *BookRepository {
	return &BookRepository{coll: coll}
}

func decodeBook(rec store.Record) (model.Book, error) {
	var book model.Book
	if err := jsonx.Unmarshal(rec.Doc, &book); err != nil {
		return model.Book{}, errors.Wrap(err, "decoding book document")
	}
	book.ID = rec.ID
	return book, nil
}

func decodeBooks(records []store.Record) ([]model.Book, error) {
	books := make([]model.Book, 0, len(records))
	for _, rec := range records {
		book, err := decodeBook(rec)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// FindByID returns the book stored under id, or store.ErrNotFound.
func (r *BookRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Book, error) {
	doc, err := r.coll.FindByID(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	return decodeBook(store.Record{ID: id, Doc: doc})
}

// All returns every book ordered ascending by title.
func (r *BookRepository) All(ctx context.Context) ([]model.Book, error) {
	records, err := r.coll.Find(ctx, nil, "title")
	if err != nil {
		return nil, err
	}
	return decodeBooks(records)
}

// FindByGenre returns the books whose genre field equals genreID, ordered
// ascending by title. An empty result is not an error.
func (r *BookRepository) FindByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	records, err := r.coll.Find(ctx, store.Filter{"genre": genreID.String()}, "title")
	if err != nil {
		return nil, err
	}
	return decodeBooks(records)
}

// Insert stores book as a new document and returns its assigned id.
func (r *BookRepository) Insert(ctx context.Context, book model.Book) (uuid.UUID, error) {
	doc, err := jsonx.Marshal(book)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "encoding book document")
	}
	return r.coll.Insert(ctx, doc)
}

// Count returns the number of stored books.
func (r *BookRepository) Count(ctx context.Context) (int, error) {
	records, err := r.coll.Find(ctx, nil, "")
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
