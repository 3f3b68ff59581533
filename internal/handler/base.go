package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/openshelf/catalog/internal/server"
	"github.com/openshelf/catalog/internal/validation"
)

// Handler is the base handler type that holds shared application
// dependencies.
//
// Concrete handlers embed it so they can access shared resources via
// *server.Server (config, logger, db). It is returned by value: the struct
// only contains a pointer field, so copying is cheap and still points to the
// same Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// render writes a templ component as the HTML response body.
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response())
}

// redirect sends the client to location with 302 Found, the status form
// submissions expect.
func redirect(c echo.Context, location string) error {
	return c.Redirect(http.StatusFound, location)
}

// pathID parses the :id route parameter. The boolean is false when the
// parameter is not a well-formed UUID — such an id cannot name any stored
// document, so callers treat it like a missing one.
func pathID(c echo.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	if !validation.IsValidUUID(raw) {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
