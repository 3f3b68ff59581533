// Package model defines the catalog's document types.
//
// Genres and Books are stored as JSON documents in their collections. The id
// lives in the collection's key column, not inside the document body, so it is
// excluded from serialization and attached by the repository layer after a
// read or insert.
package model

import (
	"github.com/google/uuid"
)

// Genre is a named category that Books reference.
//
// Invariants enforced by the create flow (not by the store):
//   - Name is unique across all genres.
//   - Name is at least 2 characters long after trimming.
//   - Name is HTML-escaped before persistence.
type Genre struct {
	ID   uuid.UUID `json:"-"`
	Name string    `json:"name"`
}

// URL returns the canonical detail location for this genre.
func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID.String()
}

// Book is a catalog entry referencing a single Genre by id.
//
// This component never mutates books; they exist to test referential
// integrity (a Genre with dependent Books cannot be deleted) and to fill the
// read-only book pages.
type Book struct {
	ID      uuid.UUID `json:"-"`
	Title   string    `json:"title"`
	Author  string    `json:"author"`
	Summary string    `json:"summary"`
	ISBN    string    `json:"isbn"`
	Genre   uuid.UUID `json:"genre"`
}

// URL returns the canonical detail location for this book.
func (b Book) URL() string {
	return "/catalog/book/" + b.ID.String()
}
