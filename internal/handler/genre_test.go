package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/catalog/internal/errs"
	"github.com/openshelf/catalog/internal/model"
	"github.com/openshelf/catalog/internal/service"
)

type genreFixture struct {
	handler *GenreHandler
	catalog *service.CatalogService
	genres  *service.MemGenreStore
	books   *service.MemBookStore
	echo    *echo.Echo
}

func newGenreFixture(t *testing.T) *genreFixture {
	t.Helper()

	genres := service.NewMemGenreStore()
	books := service.NewMemBookStore()
	catalog := service.NewCatalogService(genres, books)

	return &genreFixture{
		handler: NewGenreHandler(nil, catalog),
		catalog: catalog,
		genres:  genres,
		books:   books,
		echo:    echo.New(),
	}
}

func (f *genreFixture) get(t *testing.T, path string, id string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return rec, c
}

func (f *genreFixture) postForm(t *testing.T, path string, form url.Values, id string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return rec, c
}

func (f *genreFixture) mustCreate(t *testing.T, name string) model.Genre {
	t.Helper()
	genre, err := f.catalog.CreateGenre(context.Background(), name)
	require.NoError(t, err)
	return genre
}

func requireNotFoundError(t *testing.T, err error) {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

// --- List ----------------------------------------------------------------

func Test_List_RendersGenresInNameOrder(t *testing.T) {
	f := newGenreFixture(t)
	f.mustCreate(t, "Poetry")
	f.mustCreate(t, "Fantasy")

	rec, c := f.get(t, "/catalog/genres", "")
	require.NoError(t, f.handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Less(t, strings.Index(body, "Fantasy"), strings.Index(body, "Poetry"))
}

// --- Detail ---------------------------------------------------------------

func Test_Detail_RendersGenreWithBooks(t *testing.T) {
	f := newGenreFixture(t)
	genre := f.mustCreate(t, "Fantasy")
	f.books.Seed(model.Book{ID: uuid.New(), Title: "The Hobbit", Author: "Tolkien", Genre: genre.ID})

	rec, c := f.get(t, genre.URL(), genre.ID.String())
	require.NoError(t, f.handler.Detail(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Genre: Fantasy")
	assert.Contains(t, rec.Body.String(), "The Hobbit")
}

func Test_Detail_MissingGenreSignalsNotFound(t *testing.T) {
	f := newGenreFixture(t)

	_, c := f.get(t, "/catalog/genre/x", uuid.NewString())
	err := f.handler.Detail(c)

	requireNotFoundError(t, err)
}

func Test_Detail_MalformedIDSignalsNotFound(t *testing.T) {
	f := newGenreFixture(t)

	_, c := f.get(t, "/catalog/genre/nope", "nope")
	err := f.handler.Detail(c)

	requireNotFoundError(t, err)
}

func Test_Detail_StoreFailurePropagates(t *testing.T) {
	f := newGenreFixture(t)
	f.genres.FailWith = assert.AnError

	_, c := f.get(t, "/catalog/genre/x", uuid.NewString())
	err := f.handler.Detail(c)

	assert.ErrorIs(t, err, assert.AnError)
}

// --- Create ---------------------------------------------------------------

func Test_CreateForm_RendersEmptyForm(t *testing.T) {
	f := newGenreFixture(t)

	rec, c := f.get(t, "/catalog/genre/create", "")
	require.NoError(t, f.handler.CreateForm(c))

	assert.Contains(t, rec.Body.String(), "<title>Create Genre</title>")
	assert.Contains(t, rec.Body.String(), `value=""`)
}

func Test_CreateSubmit_PersistsAndRedirectsToDetail(t *testing.T) {
	f := newGenreFixture(t)

	rec, c := f.postForm(t, "/catalog/genre/create", url.Values{"name": {"  Fiction  "}}, "")
	require.NoError(t, f.handler.CreateSubmit(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	location := rec.Header().Get(echo.HeaderLocation)
	assert.True(t, strings.HasPrefix(location, "/catalog/genre/"))

	// Fetching the redirect target yields the trimmed name.
	created, err := f.genres.FindOneByName(context.Background(), "Fiction")
	require.NoError(t, err)
	assert.Equal(t, created.URL(), location)
}

func Test_CreateSubmit_DuplicateRedirectsToExistingWithoutInsert(t *testing.T) {
	f := newGenreFixture(t)
	existing := f.mustCreate(t, "Fiction")

	rec, c := f.postForm(t, "/catalog/genre/create", url.Values{"name": {"Fiction"}}, "")
	require.NoError(t, f.handler.CreateSubmit(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, existing.URL(), rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, 1, f.genres.Len(), "list() must yield exactly one Fiction")
}

func Test_CreateSubmit_TwoCharacterNameIsAccepted(t *testing.T) {
	f := newGenreFixture(t)

	rec, c := f.postForm(t, "/catalog/genre/create", url.Values{"name": {"Ab"}}, "")
	require.NoError(t, f.handler.CreateSubmit(c))

	assert.Equal(t, http.StatusFound, rec.Code)
}

func Test_CreateSubmit_OneCharacterNameRerendersWithMessage(t *testing.T) {
	f := newGenreFixture(t)

	rec, c := f.postForm(t, "/catalog/genre/create", url.Values{"name": {"A"}}, "")
	require.NoError(t, f.handler.CreateSubmit(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "at least 2 characters")
	assert.Contains(t, body, `value="A"`, "candidate value must be kept in the form")
	assert.Equal(t, 0, f.genres.Len(), "the store must not be touched")
}

func Test_CreateSubmit_EscapesMarkupBeforePersisting(t *testing.T) {
	f := newGenreFixture(t)

	_, c := f.postForm(t, "/catalog/genre/create", url.Values{"name": {"<b>Bold</b>"}}, "")
	require.NoError(t, f.handler.CreateSubmit(c))

	stored, err := f.genres.FindOneByName(context.Background(), "&lt;b&gt;Bold&lt;/b&gt;")
	require.NoError(t, err)
	assert.NotContains(t, stored.Name, "<")
}

func Test_CreateSubmit_StoreFailurePropagates(t *testing.T) {
	f := newGenreFixture(t)
	f.genres.FailWith = assert.AnError

	_, c := f.postForm(t, "/catalog/genre/create", url.Values{"name": {"Fiction"}}, "")
	err := f.handler.CreateSubmit(c)

	assert.ErrorIs(t, err, assert.AnError)
}

// --- Delete ---------------------------------------------------------------

func Test_DeleteForm_RendersConfirmation(t *testing.T) {
	f := newGenreFixture(t)
	genre := f.mustCreate(t, "Sci-Fi")

	rec, c := f.get(t, genre.URL()+"/delete", genre.ID.String())
	require.NoError(t, f.handler.DeleteForm(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Do you really want to delete this Genre?")
}

func Test_DeleteForm_MissingGenreRedirectsSilently(t *testing.T) {
	f := newGenreFixture(t)

	rec, c := f.get(t, "/catalog/genre/x/delete", uuid.NewString())
	require.NoError(t, f.handler.DeleteForm(c))

	// Soft not-found: redirect to the list, no error signaled.
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalog/genres", rec.Header().Get(echo.HeaderLocation))
}

func Test_DeleteSubmit_BlockedByDependentBooks(t *testing.T) {
	f := newGenreFixture(t)
	genre := f.mustCreate(t, "Sci-Fi")
	f.books.Seed(model.Book{ID: uuid.New(), Title: "Dune", Author: "Herbert", Genre: genre.ID})

	rec, c := f.postForm(t, genre.URL()+"/delete",
		url.Values{"genreid": {genre.ID.String()}}, genre.ID.String())
	require.NoError(t, f.handler.DeleteSubmit(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Delete the following books")
	assert.Contains(t, rec.Body.String(), "Dune")

	// Genre still present.
	_, err := f.genres.FindByID(context.Background(), genre.ID)
	assert.NoError(t, err)
}

func Test_DeleteSubmit_WithoutDependentsDeletesAndRedirects(t *testing.T) {
	f := newGenreFixture(t)
	genre := f.mustCreate(t, "Sci-Fi")

	rec, c := f.postForm(t, genre.URL()+"/delete",
		url.Values{"genreid": {genre.ID.String()}}, genre.ID.String())
	require.NoError(t, f.handler.DeleteSubmit(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalog/genres", rec.Header().Get(echo.HeaderLocation))

	// A subsequent detail fetch signals not-found.
	_, c = f.get(t, genre.URL(), genre.ID.String())
	requireNotFoundError(t, f.handler.Detail(c))
}

func Test_DeleteSubmit_UsesBodyIDNotPathID(t *testing.T) {
	f := newGenreFixture(t)
	target := f.mustCreate(t, "Target")
	other := f.mustCreate(t, "Other")

	// Path carries a different id; the body id must win.
	rec, c := f.postForm(t, other.URL()+"/delete",
		url.Values{"genreid": {target.ID.String()}}, other.ID.String())
	require.NoError(t, f.handler.DeleteSubmit(c))

	assert.Equal(t, http.StatusFound, rec.Code)

	_, err := f.genres.FindByID(context.Background(), target.ID)
	assert.Error(t, err, "the body-identified genre must be the deleted one")
	_, err = f.genres.FindByID(context.Background(), other.ID)
	assert.NoError(t, err)
}

// --- Update ---------------------------------------------------------------

func Test_UpdateForm_PrefillsExistingGenre(t *testing.T) {
	f := newGenreFixture(t)
	genre := f.mustCreate(t, "Fantasy")

	rec, c := f.get(t, genre.URL()+"/update", genre.ID.String())
	require.NoError(t, f.handler.UpdateForm(c))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Update Genre</title>")
	assert.Contains(t, body, `value="Fantasy"`)
}

func Test_UpdateForm_MissingGenreSignalsNotFound(t *testing.T) {
	f := newGenreFixture(t)

	_, c := f.get(t, "/catalog/genre/x/update", uuid.NewString())
	requireNotFoundError(t, f.handler.UpdateForm(c))
}

func Test_UpdateSubmit_PreservesIDAndRedirects(t *testing.T) {
	f := newGenreFixture(t)
	genre := f.mustCreate(t, "Fantasy")

	rec, c := f.postForm(t, genre.URL()+"/update",
		url.Values{"name": {"High Fantasy"}}, genre.ID.String())
	require.NoError(t, f.handler.UpdateSubmit(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, genre.URL(), rec.Header().Get(echo.HeaderLocation))

	updated, err := f.genres.FindByID(context.Background(), genre.ID)
	require.NoError(t, err)
	assert.Equal(t, "High Fantasy", updated.Name)
	assert.Equal(t, genre.ID, updated.ID, "id must never be regenerated")
}

func Test_UpdateSubmit_ValidationFailureRerendersUnderCreateTitle(t *testing.T) {
	f := newGenreFixture(t)
	genre := f.mustCreate(t, "Fantasy")

	rec, c := f.postForm(t, genre.URL()+"/update",
		url.Values{"name": {"A"}}, genre.ID.String())
	require.NoError(t, f.handler.UpdateSubmit(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	// The update re-render intentionally shows the create title.
	assert.Contains(t, rec.Body.String(), "<title>Create Genre</title>")

	unchanged, err := f.genres.FindByID(context.Background(), genre.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", unchanged.Name, "the store must not be touched")
}

func Test_UpdateSubmit_StoresEscapedMarkup(t *testing.T) {
	f := newGenreFixture(t)
	genre := f.mustCreate(t, "Fantasy")

	_, c := f.postForm(t, genre.URL()+"/update",
		url.Values{"name": {"<script>"}}, genre.ID.String())
	require.NoError(t, f.handler.UpdateSubmit(c))

	updated, err := f.genres.FindByID(context.Background(), genre.ID)
	require.NoError(t, err)
	assert.Equal(t, "&lt;script&gt;", updated.Name)
}

func Test_UpdateSubmit_NoUniquenessRecheck(t *testing.T) {
	f := newGenreFixture(t)
	f.mustCreate(t, "Fantasy")
	other := f.mustCreate(t, "Poetry")

	// Renaming Poetry to Fantasy is allowed: update performs no uniqueness
	// re-check against other genres.
	rec, c := f.postForm(t, other.URL()+"/update",
		url.Values{"name": {"Fantasy"}}, other.ID.String())
	require.NoError(t, f.handler.UpdateSubmit(c))

	assert.Equal(t, http.StatusFound, rec.Code)
}
