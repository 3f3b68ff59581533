package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/openshelf/catalog/internal/errs"
	"github.com/openshelf/catalog/internal/middleware"
	"github.com/openshelf/catalog/internal/model"
	"github.com/openshelf/catalog/internal/server"
	"github.com/openshelf/catalog/internal/service"
	"github.com/openshelf/catalog/internal/store"
	"github.com/openshelf/catalog/internal/validation"
	"github.com/openshelf/catalog/internal/views"
)

const genreListURL = "/catalog/genres"

// GenreHandler serves the genre CRUD pages.
//
// Every operation terminates in exactly one response (a rendered page or a
// redirect) or one propagated error; there are no retries and no partial
// responses.
type GenreHandler struct {
	Handler
	catalog *service.CatalogService
}

// NewGenreHandler constructs a GenreHandler.
func NewGenreHandler(s *server.Server, catalog *service.CatalogService) *GenreHandler {
	return &GenreHandler{
		Handler: NewHandler(s),
		catalog: catalog,
	}
}

// List renders all genres ordered by name.
//
// GET /catalog/genres
func (h *GenreHandler) List(c echo.Context) error {
	genres, err := h.catalog.ListGenres(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, views.GenreList(genres))
}

// Detail renders one genre and its dependent books. The two fetches run
// concurrently in the service and are joined before rendering.
//
// GET /catalog/genre/:id
func (h *GenreHandler) Detail(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errs.NewNotFoundError("Genre not found")
	}

	genre, books, err := h.catalog.GenreWithBooks(c.Request().Context(), id)
	if err != nil {
		if store.IsNotFound(err) {
			return errs.NewNotFoundError("Genre not found")
		}
		return err
	}

	return render(c, http.StatusOK, views.GenreDetail(genre, books))
}

// CreateForm renders the empty create form. No store access.
//
// GET /catalog/genre/create
func (h *GenreHandler) CreateForm(c echo.Context) error {
	return render(c, http.StatusOK, views.GenreForm(views.CreateGenreTitle, model.Genre{}, nil))
}

// CreateSubmit validates the submitted name and persists a new genre.
//
// Validation failure re-renders the form with the candidate value and the
// violation messages; it is a terminal response, not an error. A name that
// already exists is an idempotent success: the client is redirected to the
// existing genre without creating a duplicate.
//
// POST /catalog/genre/create
func (h *GenreHandler) CreateSubmit(c echo.Context) error {
	form := new(validation.GenreForm)
	if err := c.Bind(form); err != nil {
		return errs.NewBadRequestError("Invalid form submission")
	}
	form.Sanitize()

	candidate := model.Genre{Name: form.EscapedName()}

	if messages := validation.Messages(form.Validate()); len(messages) > 0 {
		return render(c, http.StatusOK, views.GenreForm(views.CreateGenreTitle, candidate, messages))
	}

	genre, err := h.catalog.CreateGenre(c.Request().Context(), candidate.Name)
	if err != nil {
		return err
	}

	return redirect(c, genre.URL())
}

// DeleteForm renders the delete confirmation page with the genre and its
// dependent books.
//
// A missing genre redirects silently to the genre list instead of signaling
// not-found. That asymmetry with Detail is intentional and kept as-is; do not
// unify the two without instruction.
//
// GET /catalog/genre/:id/delete
func (h *GenreHandler) DeleteForm(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return redirect(c, genreListURL)
	}

	genre, books, err := h.catalog.GenreWithBooks(c.Request().Context(), id)
	if err != nil {
		if store.IsNotFound(err) {
			return redirect(c, genreListURL)
		}
		return err
	}

	return render(c, http.StatusOK, views.GenreDelete(genre, books))
}

// DeleteSubmit deletes a genre unless books still reference it.
//
// The id comes from the submitted form body (field "genreid"), not the route
// path. When dependent books exist the delete is refused and the same
// confirmation page is re-rendered listing them — a terminal response, not an
// error.
//
// POST /catalog/genre/:id/delete
func (h *GenreHandler) DeleteSubmit(c echo.Context) error {
	form := new(validation.GenreDeleteForm)
	if err := c.Bind(form); err != nil {
		return errs.NewBadRequestError("Invalid form submission")
	}
	if err := form.Validate(); err != nil {
		return errs.NewBadRequestError("Invalid form submission")
	}

	if !validation.IsValidUUID(form.GenreID) {
		// No stored genre can carry this id; nothing to delete.
		return redirect(c, genreListURL)
	}
	id := uuid.MustParse(form.GenreID)

	genre, books, deleted, err := h.catalog.DeleteGenre(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if !deleted {
		middleware.GetLogger(c).Info().
			Str("genre_id", id.String()).
			Int("dependent_books", len(books)).
			Msg("delete blocked by dependent books")
		return render(c, http.StatusOK, views.GenreDelete(genre, books))
	}

	return redirect(c, genreListURL)
}

// UpdateForm renders the create form pre-populated with the existing genre,
// titled as an update. A missing genre signals not-found, same contract as
// Detail.
//
// GET /catalog/genre/:id/update
func (h *GenreHandler) UpdateForm(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errs.NewNotFoundError("Genre not found")
	}

	genre, err := h.catalog.FindGenre(c.Request().Context(), id)
	if err != nil {
		if store.IsNotFound(err) {
			return errs.NewNotFoundError("Genre not found")
		}
		return err
	}

	return render(c, http.StatusOK, views.GenreForm(views.UpdateGenreTitle, genre, nil))
}

// UpdateSubmit validates the submitted name and updates the genre in place.
//
// The candidate carries the original id from the route path; the id is never
// regenerated on update. On validation failure the form re-renders under the
// create title, a known mislabeling that stays as-is. No uniqueness re-check
// is performed against other genres, an intentional scope limitation.
//
// POST /catalog/genre/:id/update
func (h *GenreHandler) UpdateSubmit(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errs.NewNotFoundError("Genre not found")
	}

	form := new(validation.GenreForm)
	if err := c.Bind(form); err != nil {
		return errs.NewBadRequestError("Invalid form submission")
	}
	form.Sanitize()

	candidate := model.Genre{ID: id, Name: form.EscapedName()}

	if messages := validation.Messages(form.Validate()); len(messages) > 0 {
		return render(c, http.StatusOK, views.GenreForm(views.CreateGenreTitle, candidate, messages))
	}

	genre, err := h.catalog.UpdateGenre(c.Request().Context(), id, candidate.Name)
	if err != nil {
		if store.IsNotFound(err) {
			return errs.NewNotFoundError("Genre not found")
		}
		return err
	}

	return redirect(c, genre.URL())
}
