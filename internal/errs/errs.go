// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures (e.g. HTTPError for
// pages the global error handler renders) so every failure surfaces to the
// client with a consistent status and message.
package errs
