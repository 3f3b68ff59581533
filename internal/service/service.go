// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives sanitized
// input from the handlers, applies the catalog's rules (name uniqueness on
// create, the dependent-books delete guard), and calls repository methods to
// read and persist documents.
package service
