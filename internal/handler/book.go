package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openshelf/catalog/internal/errs"
	"github.com/openshelf/catalog/internal/server"
	"github.com/openshelf/catalog/internal/service"
	"github.com/openshelf/catalog/internal/store"
	"github.com/openshelf/catalog/internal/views"
)

// BookHandler serves the read-only book pages and the catalog index. Book
// writes happen only through the seeder; this component never mutates books.
type BookHandler struct {
	Handler
	catalog *service.CatalogService
}

// NewBookHandler constructs a BookHandler.
func NewBookHandler(s *server.Server, catalog *service.CatalogService) *BookHandler {
	return &BookHandler{
		Handler: NewHandler(s),
		catalog: catalog,
	}
}

// Index renders the catalog home page. Genre and book counts are fetched
// concurrently and joined in the service.
//
// GET /catalog
func (h *BookHandler) Index(c echo.Context) error {
	genreCount, bookCount, err := h.catalog.Counts(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, views.Index(genreCount, bookCount))
}

// List renders all books ordered by title.
//
// GET /catalog/books
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.catalog.ListBooks(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, views.BookList(books))
}

// Detail renders one book and the genre it references.
//
// GET /catalog/book/:id
func (h *BookHandler) Detail(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errs.NewNotFoundError("Book not found")
	}

	book, genre, err := h.catalog.BookWithGenre(c.Request().Context(), id)
	if err != nil {
		if store.IsNotFound(err) {
			return errs.NewNotFoundError("Book not found")
		}
		return err
	}

	return render(c, http.StatusOK, views.BookDetail(book, genre))
}
