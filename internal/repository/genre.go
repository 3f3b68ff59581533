package repository

import (
	"context"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/openshelf/catalog/internal/model"
	"github.com/openshelf/catalog/internal/store"
)

var jsonx = jsoniter.ConfigCompatibleWithStandardLibrary

// GenreRepository provides typed access to the genres collection.
type GenreRepository struct {
	coll *store.Collection
}

// NewGenreRepository wraps a genres collection.
func NewGenreRepository(coll *store.Collection) *GenreRepository {
	return &GenreRepository{coll: coll}
}

func decodeGenre(rec store.Record) (model.Genre, error) {
	var genre model.Genre
	if err := jsonx.Unmarshal(rec.Doc, &genre); err != nil {
		return model.Genre{}, errors.Wrap(err, "decoding genre document")
	}
	genre.ID = rec.ID
	return genre, nil
}

// FindByID returns the genre stored under id, or store.ErrNotFound.
func (r *GenreRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Genre, error) {
	doc, err := r.coll.FindByID(ctx, id)
	if err != nil {
		return model.Genre{}, err
	}
	return decodeGenre(store.Record{ID: id, Doc: doc})
}

// All returns every genre ordered ascending by name.
func (r *GenreRepository) All(ctx context.Context) ([]model.Genre, error) {
	records, err := r.coll.Find(ctx, nil, "name")
	if err != nil {
		return nil, err
	}

	genres := make([]model.Genre, 0, len(records))
	for _, rec := range records {
		genre, err := decodeGenre(rec)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	return genres, nil
}

// FindOneByName returns the genre whose name exactly equals name, or
// store.ErrNotFound. The comparison is against the stored (sanitized) form.
func (r *GenreRepository) FindOneByName(ctx context.Context, name string) (model.Genre, error) {
	rec, err := r.coll.FindOne(ctx, store.Filter{"name": name})
	if err != nil {
		return model.Genre{}, err
	}
	return decodeGenre(rec)
}

// Insert stores genre as a new document and returns its assigned id.
func (r *GenreRepository) Insert(ctx context.Context, genre model.Genre) (uuid.UUID, error) {
	doc, err := jsonx.Marshal(genre)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "encoding genre document")
	}
	return r.coll.Insert(ctx, doc)
}

// UpdateByID replaces the genre document stored under id.
func (r *GenreRepository) UpdateByID(ctx context.Context, id uuid.UUID, genre model.Genre) error {
	doc, err := jsonx.Marshal(genre)
	if err != nil {
		return errors.Wrap(err, "encoding genre document")
	}
	return r.coll.UpdateByID(ctx, id, doc)
}

// DeleteByID removes the genre stored under id.
func (r *GenreRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.coll.DeleteByID(ctx, id)
}

// Count returns the number of stored genres.
func (r *GenreRepository) Count(ctx context.Context) (int, error) {
	records, err := r.coll.Find(ctx, nil, "")
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// Names returns the ordered genre names; used by the seeder to report what
// already exists.
func (r *GenreRepository) Names(ctx context.Context) ([]string, error) {
	genres, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(genres, func(g model.Genre, _ int) string { return g.Name }), nil
}
