package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCollection(t *testing.T) *Collection {
	t.Helper()
	logger := zerolog.Nop()
	return NewCollection(nil, "genres", &logger)
}

func Test_BuildFindByID_SelectsDocByKey(t *testing.T) {
	coll := testCollection(t)
	id := uuid.MustParse("3e0c2a46-9c5b-4a0e-8f2d-0d6f8a1b2c3d")

	sqlQuery, err := coll.buildFindByID(id)

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `SELECT "doc" FROM "genres"`)
	assert.Contains(t, sqlQuery, `'3e0c2a46-9c5b-4a0e-8f2d-0d6f8a1b2c3d'::uuid`)
}

func Test_BuildFind_WithFilterAndOrder(t *testing.T) {
	coll := testCollection(t)

	sqlQuery, err := coll.buildFind(Filter{"genre": "abc"}, "name")

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `doc @> '{"genre":"abc"}'::jsonb`)
	assert.Contains(t, sqlQuery, `ORDER BY doc->>'name' ASC`)
}

func Test_BuildFind_NoFilterListsWholeCollection(t *testing.T) {
	coll := testCollection(t)

	sqlQuery, err := coll.buildFind(nil, "name")

	require.NoError(t, err)
	assert.NotContains(t, sqlQuery, "WHERE")
	assert.Contains(t, sqlQuery, `ORDER BY doc->>'name' ASC`)
}

func Test_BuildFindOne_LimitsToSingleRow(t *testing.T) {
	coll := testCollection(t)

	sqlQuery, err := coll.buildFindOne(Filter{"name": "Fiction"})

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `doc @> '{"name":"Fiction"}'::jsonb`)
	assert.Contains(t, sqlQuery, "LIMIT 1")
}

func Test_BuildInsert_CastsDocumentToJsonb(t *testing.T) {
	coll := testCollection(t)
	id := uuid.MustParse("3e0c2a46-9c5b-4a0e-8f2d-0d6f8a1b2c3d")

	sqlQuery, err := coll.buildInsert(id, []byte(`{"name":"Poetry"}`))

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `INSERT INTO "genres"`)
	assert.Contains(t, sqlQuery, `'{"name":"Poetry"}'::jsonb`)
	assert.Contains(t, sqlQuery, `'3e0c2a46-9c5b-4a0e-8f2d-0d6f8a1b2c3d'::uuid`)
}

func Test_BuildUpdateByID_ReplacesDoc(t *testing.T) {
	coll := testCollection(t)
	id := uuid.MustParse("3e0c2a46-9c5b-4a0e-8f2d-0d6f8a1b2c3d")

	sqlQuery, err := coll.buildUpdateByID(id, []byte(`{"name":"Drama"}`))

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `UPDATE "genres" SET`)
	assert.Contains(t, sqlQuery, `'{"name":"Drama"}'::jsonb`)
}

func Test_BuildDeleteByID_TargetsKeyColumn(t *testing.T) {
	coll := testCollection(t)
	id := uuid.MustParse("3e0c2a46-9c5b-4a0e-8f2d-0d6f8a1b2c3d")

	sqlQuery, err := coll.buildDeleteByID(id)

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `DELETE FROM "genres"`)
	assert.Contains(t, sqlQuery, `'3e0c2a46-9c5b-4a0e-8f2d-0d6f8a1b2c3d'::uuid`)
}

func Test_Classify_MapsNoRowsToErrNotFound(t *testing.T) {
	err := classify("finding document in", "genres", pgx.ErrNoRows)

	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "genres")
}

func Test_IsNotFound_FalseForOtherErrors(t *testing.T) {
	err := classify("querying", "genres", assert.AnError)

	assert.False(t, IsNotFound(err))
}
