// Package handler is the HTTP layer, the first entry point after the router.
//
// It parses requests, drives input sanitization through the validation
// package, calls the service layer, and turns results into rendered pages or
// redirects. Failures it cannot handle locally are returned as errors for the
// global error handler.
package handler
