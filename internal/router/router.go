// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the route groups, mapping specific
// paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openshelf/catalog/internal/handler"
	"github.com/openshelf/catalog/internal/middleware"
)

// New builds the Echo router with the full middleware stack and all routes
// registered.
func New(mws *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()
	r.HideBanner = true

	r.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	// Order matters: the request id must exist before the context enhancer
	// builds the request-scoped logger, and both before request logging.
	r.Use(middleware.RequestID())
	r.Use(mws.ContextEnhancer.EnhanceContext())
	r.Use(mws.Global.RequestLogger())
	r.Use(mws.Global.Recover())
	r.Use(mws.Global.Secure())
	r.Use(mws.Global.CORS())

	registerSystemRoutes(r, h)
	registerCatalogRoutes(r, h)

	return r
}

// registerCatalogRoutes wires the catalog pages.
//
// Note the route shapes: create comes before the :id routes so Echo never
// treats "create" as an id, and the delete submit carries its id in the form
// body even though the confirmation page lives under a path id.
func registerCatalogRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/catalog")
	})

	r.GET("/catalog", h.Book.Index)

	r.GET("/catalog/genres", h.Genre.List)
	r.GET("/catalog/genre/create", h.Genre.CreateForm)
	r.POST("/catalog/genre/create", h.Genre.CreateSubmit)
	r.GET("/catalog/genre/:id", h.Genre.Detail)
	r.GET("/catalog/genre/:id/delete", h.Genre.DeleteForm)
	r.POST("/catalog/genre/:id/delete", h.Genre.DeleteSubmit)
	r.GET("/catalog/genre/:id/update", h.Genre.UpdateForm)
	r.POST("/catalog/genre/:id/update", h.Genre.UpdateSubmit)

	r.GET("/catalog/books", h.Book.List)
	r.GET("/catalog/book/:id", h.Book.Detail)
}
