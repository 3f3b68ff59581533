// Package repository handles all interactions with the document store.
//
// It wraps the untyped store collections with typed methods for the catalog's
// entities, (de)serializing documents and attaching ids, abstracting store
// details away from the service layer.
package repository
