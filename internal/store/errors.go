// Package store implements document collections on top of PostgreSQL.
//
// Each collection is a table with a uuid key column and a jsonb document
// column. Filters compile to jsonb containment predicates, so callers query
// documents by field values without the store knowing their schema.
//
// Error contract: every failing operation returns either ErrNotFound or a
// wrapped store error. Callers are expected to handle ErrNotFound explicitly
// and propagate everything else untouched.
package store

import (
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when a lookup matches no document, or when an
// update/delete by id affects no rows.
var ErrNotFound = errors.New("store: document not found")

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// classify converts a driver-level failure into the store's error taxonomy.
//
// "No rows" conditions become ErrNotFound tagged with the collection name.
// Postgres server errors keep their SQLSTATE in the message so operators can
// grep logs for the original code; everything else is wrapped with the
// operation for context.
func classify(op, table string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errors.Wrapf(ErrNotFound, "%s %s", op, table)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return errors.Wrap(err, fmt.Sprintf("%s %s (sqlstate %s)", op, table, pgErr.Code))
	}

	return errors.Wrapf(err, "%s %s", op, table)
}
