package store

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	// Registers the postgres dialect with goqu.
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	dialectPostgres = "postgres"
	colID           = "id"
	colDoc          = "doc"
	castJsonb       = "?::jsonb"
	castUUID        = "?::uuid"
)

var jsonx = jsoniter.ConfigCompatibleWithStandardLibrary

// Filter matches documents whose body contains every listed field/value pair.
// It compiles to a jsonb containment predicate (doc @> '{...}').
type Filter map[string]any

// toJSON serializes the filter for use in a containment predicate.
func (f Filter) toJSON() (string, error) {
	raw, err := jsonx.Marshal(map[string]any(f))
	if err != nil {
		return "", errors.Wrap(err, "marshaling filter")
	}
	return string(raw), nil
}

// Record is a single stored document together with its key.
type Record struct {
	ID  uuid.UUID
	Doc []byte
}

// Collection provides find/insert/update/delete over one document table.
//
// All operations are safe for concurrent use; the underlying pgx pool handles
// connection sharing. The collection itself holds no state beyond its name.
type Collection struct {
	pool  *pgxpool.Pool
	table string
	log   zerolog.Logger
}

// NewCollection binds a collection to its backing table.
func NewCollection(pool *pgxpool.Pool, table string, logger *zerolog.Logger) *Collection {
	return &Collection{
		pool:  pool,
		table: table,
		log:   logger.With().Str("collection", table).Logger(),
	}
}

// Table returns the name of the backing table.
func (c *Collection) Table() string {
	return c.table
}

// --- Query building ----------------------------------------------------------
//
// Statements are built with goqu and converted to plain SQL before execution.
// Building is separated from execution so the SQL shapes can be unit tested
// without a database.

func (c *Collection) buildFindByID(id uuid.UUID) (string, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(c.table).
		Select(colDoc).
		Where(goqu.C(colID).Eq(goqu.L(castUUID, id.String())))

	sqlQuery, _, err := stmt.ToSQL()
	return sqlQuery, err
}

func (c *Collection) buildFind(filter Filter, orderField string) (string, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(c.table).
		Select(colID, colDoc)

	if len(filter) > 0 {
		filterJSON, err := filter.toJSON()
		if err != nil {
			return "", err
		}
		stmt = stmt.Where(goqu.L(fmt.Sprintf("%s @> %s", colDoc, castJsonb), filterJSON))
	}

	if orderField != "" {
		// orderField is always a code-level constant, never user input.
		stmt = stmt.Order(goqu.L(fmt.Sprintf("%s->>'%s'", colDoc, orderField)).Asc())
	}

	sqlQuery, _, err := stmt.ToSQL()
	return sqlQuery, err
}

func (c *Collection) buildFindOne(filter Filter) (string, error) {
	filterJSON, err := filter.toJSON()
	if err != nil {
		return "", err
	}

	stmt := goqu.Dialect(dialectPostgres).
		From(c.table).
		Select(colID, colDoc).
		Where(goqu.L(fmt.Sprintf("%s @> %s", colDoc, castJsonb), filterJSON)).
		Limit(1)

	sqlQuery, _, err := stmt.ToSQL()
	return sqlQuery, err
}

func (c *Collection) buildInsert(id uuid.UUID, doc []byte) (string, error) {
	stmt := goqu.Dialect(dialectPostgres).
		Insert(c.table).
		Cols(colID, colDoc).
		Vals(goqu.Vals{goqu.L(castUUID, id.String()), goqu.L(castJsonb, string(doc))})

	sqlQuery, _, err := stmt.ToSQL()
	return sqlQuery, err
}

func (c *Collection) buildUpdateByID(id uuid.UUID, doc []byte) (string, error) {
	stmt := goqu.Dialect(dialectPostgres).
		Update(c.table).
		Set(goqu.Record{colDoc: goqu.L(castJsonb, string(doc))}).
		Where(goqu.C(colID).Eq(goqu.L(castUUID, id.String())))

	sqlQuery, _, err := stmt.ToSQL()
	return sqlQuery, err
}

func (c *Collection) buildDeleteByID(id uuid.UUID) (string, error) {
	stmt := goqu.Dialect(dialectPostgres).
		Delete(c.table).
		Where(goqu.C(colID).Eq(goqu.L(castUUID, id.String())))

	sqlQuery, _, err := stmt.ToSQL()
	return sqlQuery, err
}

// --- Operations ---------------------------------------------------------------

// FindByID returns the document stored under id, or ErrNotFound.
func (c *Collection) FindByID(ctx context.Context, id uuid.UUID) ([]byte, error) {
	sqlQuery, err := c.buildFindByID(id)
	if err != nil {
		return nil, classify("building find-by-id for", c.table, err)
	}

	c.log.Debug().Str("query", sqlQuery).Msg("collection find by id")

	var doc []byte
	if err := c.pool.QueryRow(ctx, sqlQuery).Scan(&doc); err != nil {
		return nil, classify("finding document in", c.table, err)
	}
	return doc, nil
}

// Find returns every document matching filter, ordered ascending by the given
// document field. A nil filter matches the whole collection; an empty result
// is not an error.
func (c *Collection) Find(ctx context.Context, filter Filter, orderField string) ([]Record, error) {
	sqlQuery, err := c.buildFind(filter, orderField)
	if err != nil {
		return nil, classify("building find for", c.table, err)
	}

	c.log.Debug().Str("query", sqlQuery).Msg("collection find")

	rows, err := c.pool.Query(ctx, sqlQuery)
	if err != nil {
		return nil, classify("querying", c.table, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Doc); err != nil {
			return nil, classify("scanning row from", c.table, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("reading rows from", c.table, err)
	}

	return records, nil
}

// FindOne returns the first document matching filter, or ErrNotFound.
func (c *Collection) FindOne(ctx context.Context, filter Filter) (Record, error) {
	sqlQuery, err := c.buildFindOne(filter)
	if err != nil {
		return Record{}, classify("building find-one for", c.table, err)
	}

	c.log.Debug().Str("query", sqlQuery).Msg("collection find one")

	var rec Record
	if err := c.pool.QueryRow(ctx, sqlQuery).Scan(&rec.ID, &rec.Doc); err != nil {
		return Record{}, classify("finding document in", c.table, err)
	}
	return rec, nil
}

// Insert stores doc under a freshly assigned id and returns that id.
func (c *Collection) Insert(ctx context.Context, doc []byte) (uuid.UUID, error) {
	id := uuid.New()

	sqlQuery, err := c.buildInsert(id, doc)
	if err != nil {
		return uuid.Nil, classify("building insert for", c.table, err)
	}

	c.log.Debug().Str("query", sqlQuery).Msg("collection insert")

	if _, err := c.pool.Exec(ctx, sqlQuery); err != nil {
		return uuid.Nil, classify("inserting document into", c.table, err)
	}
	return id, nil
}

// UpdateByID replaces the document stored under id. Returns ErrNotFound when
// no document has that id.
func (c *Collection) UpdateByID(ctx context.Context, id uuid.UUID, doc []byte) error {
	sqlQuery, err := c.buildUpdateByID(id, doc)
	if err != nil {
		return classify("building update for", c.table, err)
	}

	c.log.Debug().Str("query", sqlQuery).Msg("collection update by id")

	tag, err := c.pool.Exec(ctx, sqlQuery)
	if err != nil {
		return classify("updating document in", c.table, err)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(ErrNotFound, "updating document in %s", c.table)
	}
	return nil
}

// DeleteByID removes the document stored under id. Returns ErrNotFound when
// no document has that id.
func (c *Collection) DeleteByID(ctx context.Context, id uuid.UUID) error {
	sqlQuery, err := c.buildDeleteByID(id)
	if err != nil {
		return classify("building delete for", c.table, err)
	}

	c.log.Debug().Str("query", sqlQuery).Msg("collection delete by id")

	tag, err := c.pool.Exec(ctx, sqlQuery)
	if err != nil {
		return classify("deleting document from", c.table, err)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(ErrNotFound, "deleting document from %s", c.table)
	}
	return nil
}
