package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "jobs.db")
	store, err := Open(context.Background(), dsn, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpen_CreatesSchema(t *testing.T) {
	store := openTestStore(t)

	for _, table := range []string{"users", "jobs", "applications", "goose_db_version"} {
		assert.True(t, tableExists(t, store.db, table), "table %s should exist", table)
	}
	require.NoError(t, store.Ping(context.Background()))
}

func TestMigrate_IsIdempotent(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, Migrate(context.Background(), store.db, zerolog.Nop()))
	assert.True(t, tableExists(t, store.db, "jobs"))
}

func TestMigrate_PropagatesGooseError(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })
	gooseUp = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrate: boom")
}

func TestMigrate_LogsThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "jobs.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	out := buf.String()
	assert.Contains(t, out, `"component":"migrations"`)
	assert.Contains(t, out, "00001_init.sql")
}
