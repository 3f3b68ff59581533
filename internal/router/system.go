package router

import (
	"github.com/labstack/echo/v4"

	"github.com/openshelf/catalog/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the catalog:
// the health endpoint used by monitors and the static asset route serving the
// stylesheet.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	// Serve all files from ./static at /static/*.
	r.Static("/static", "static")
}
