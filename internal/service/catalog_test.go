package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/catalog/internal/model"
	"github.com/openshelf/catalog/internal/store"
)

func newTestCatalog() (*CatalogService, *MemGenreStore, *MemBookStore) {
	genres := NewMemGenreStore()
	books := NewMemBookStore()
	return NewCatalogService(genres, books), genres, books
}

func Test_ListGenres_OrderedByNameRegardlessOfCreationOrder(t *testing.T) {
	catalog, _, _ := newTestCatalog()
	ctx := context.Background()

	for _, name := range []string{"Poetry", "Fantasy", "Mystery"} {
		_, err := catalog.CreateGenre(ctx, name)
		require.NoError(t, err)
	}

	genres, err := catalog.ListGenres(ctx)

	require.NoError(t, err)
	names := lo.Map(genres, func(g model.Genre, _ int) string { return g.Name })
	assert.Equal(t, []string{"Fantasy", "Mystery", "Poetry"}, names)
}

func Test_CreateGenre_AssignsIDAndPersists(t *testing.T) {
	catalog, genres, _ := newTestCatalog()
	ctx := context.Background()

	created, err := catalog.CreateGenre(ctx, "Fiction")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	fetched, err := genres.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fiction", fetched.Name)
}

func Test_CreateGenre_DuplicateNameIsIdempotent(t *testing.T) {
	catalog, genres, _ := newTestCatalog()
	ctx := context.Background()

	first, err := catalog.CreateGenre(ctx, "Fiction")
	require.NoError(t, err)

	second, err := catalog.CreateGenre(ctx, "Fiction")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "must redirect to the existing genre, not create another")
	assert.Equal(t, 1, genres.Len())
}

func Test_CreateGenre_PropagatesStoreError(t *testing.T) {
	catalog, genres, _ := newTestCatalog()
	genres.FailWith = assert.AnError

	_, err := catalog.CreateGenre(context.Background(), "Fiction")

	assert.ErrorIs(t, err, assert.AnError)
}

func Test_GenreWithBooks_ReturnsGenreAndDependents(t *testing.T) {
	catalog, _, books := newTestCatalog()
	ctx := context.Background()

	genre, err := catalog.CreateGenre(ctx, "Fantasy")
	require.NoError(t, err)

	books.Seed(model.Book{ID: uuid.New(), Title: "B", Genre: genre.ID})
	books.Seed(model.Book{ID: uuid.New(), Title: "A", Genre: genre.ID})
	books.Seed(model.Book{ID: uuid.New(), Title: "Other", Genre: uuid.New()})

	fetched, dependents, err := catalog.GenreWithBooks(ctx, genre.ID)

	require.NoError(t, err)
	assert.Equal(t, genre.ID, fetched.ID)
	require.Len(t, dependents, 2)
	assert.Equal(t, "A", dependents[0].Title)
	assert.Equal(t, "B", dependents[1].Title)
}

func Test_GenreWithBooks_MissingGenreIsNotFound(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	_, _, err := catalog.GenreWithBooks(context.Background(), uuid.New())

	assert.True(t, store.IsNotFound(err))
}

func Test_GenreWithBooks_BookFetchFailureAbortsThePair(t *testing.T) {
	catalog, _, books := newTestCatalog()
	ctx := context.Background()

	genre, err := catalog.CreateGenre(ctx, "Fantasy")
	require.NoError(t, err)

	books.FailWith = assert.AnError

	_, _, err = catalog.GenreWithBooks(ctx, genre.ID)

	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, store.IsNotFound(err))
}

func Test_DeleteGenre_BlockedByDependentBooks(t *testing.T) {
	catalog, genres, books := newTestCatalog()
	ctx := context.Background()

	genre, err := catalog.CreateGenre(ctx, "Sci-Fi")
	require.NoError(t, err)
	books.Seed(model.Book{ID: uuid.New(), Title: "Dune", Genre: genre.ID})

	blocked, dependents, deleted, err := catalog.DeleteGenre(ctx, genre.ID)

	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, genre.ID, blocked.ID)
	require.Len(t, dependents, 1)

	// The genre must still exist.
	_, err = genres.FindByID(ctx, genre.ID)
	assert.NoError(t, err)
}

func Test_DeleteGenre_WithoutDependentsRemovesGenre(t *testing.T) {
	catalog, genres, _ := newTestCatalog()
	ctx := context.Background()

	genre, err := catalog.CreateGenre(ctx, "Sci-Fi")
	require.NoError(t, err)

	_, _, deleted, err := catalog.DeleteGenre(ctx, genre.ID)

	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = genres.FindByID(ctx, genre.ID)
	assert.True(t, store.IsNotFound(err))
}

func Test_DeleteGenre_AlreadyGoneIsStillSuccess(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	_, _, deleted, err := catalog.DeleteGenre(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.True(t, deleted)
}

func Test_UpdateGenre_PreservesID(t *testing.T) {
	catalog, genres, _ := newTestCatalog()
	ctx := context.Background()

	genre, err := catalog.CreateGenre(ctx, "Fantasy")
	require.NoError(t, err)

	updated, err := catalog.UpdateGenre(ctx, genre.ID, "High Fantasy")

	require.NoError(t, err)
	assert.Equal(t, genre.ID, updated.ID)

	fetched, err := genres.FindByID(ctx, genre.ID)
	require.NoError(t, err)
	assert.Equal(t, "High Fantasy", fetched.Name)
	assert.Equal(t, genre.ID, fetched.ID)
}

func Test_UpdateGenre_MissingGenrePropagatesNotFound(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	_, err := catalog.UpdateGenre(context.Background(), uuid.New(), "Anything")

	assert.True(t, store.IsNotFound(err))
}

func Test_BookWithGenre_ResolvesReference(t *testing.T) {
	catalog, _, books := newTestCatalog()
	ctx := context.Background()

	genre, err := catalog.CreateGenre(ctx, "Fantasy")
	require.NoError(t, err)

	bookID := uuid.New()
	books.Seed(model.Book{ID: bookID, Title: "The Hobbit", Genre: genre.ID})

	book, bookGenre, err := catalog.BookWithGenre(ctx, bookID)

	require.NoError(t, err)
	assert.Equal(t, "The Hobbit", book.Title)
	assert.Equal(t, genre.ID, bookGenre.ID)
}

func Test_BookWithGenre_DanglingGenreReferenceIsTolerated(t *testing.T) {
	catalog, _, books := newTestCatalog()
	ctx := context.Background()

	bookID := uuid.New()
	books.Seed(model.Book{ID: bookID, Title: "Orphan", Genre: uuid.New()})

	book, genre, err := catalog.BookWithGenre(ctx, bookID)

	require.NoError(t, err)
	assert.Equal(t, "Orphan", book.Title)
	assert.Equal(t, uuid.Nil, genre.ID)
}

func Test_Counts_FetchesBothTotals(t *testing.T) {
	catalog, _, books := newTestCatalog()
	ctx := context.Background()

	_, err := catalog.CreateGenre(ctx, "Fantasy")
	require.NoError(t, err)
	books.Seed(model.Book{ID: uuid.New(), Title: "A"})
	books.Seed(model.Book{ID: uuid.New(), Title: "B"})

	genreCount, bookCount, err := catalog.Counts(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, genreCount)
	assert.Equal(t, 2, bookCount)
}

func Test_Counts_PropagatesFailureFromEitherFetch(t *testing.T) {
	catalog, _, books := newTestCatalog()
	books.FailWith = assert.AnError

	_, _, err := catalog.Counts(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}
