// Package middleware wires the HTTP middleware stack: request correlation
// ids, request-scoped loggers, the global middlewares (CORS, logging,
// recovery, secure headers), and the global error handler that turns
// propagated errors into rendered error pages.
package middleware
