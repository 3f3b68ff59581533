package middleware

import (
	"github.com/openshelf/catalog/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server, so router setup receives one object
// instead of many.
type Middlewares struct {
	// Global holds common middleware used across the whole app: CORS,
	// request logging, recovery, secure headers, and the global error
	// handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger.
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components from the application
// container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
