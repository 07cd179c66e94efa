package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestDB returns a connected SQLite database with the notes schema in a
// temp directory that is removed after the test.
func newTestDB(t testing.TB) *DB {
	t.Helper()

	db, err := Configure("sqlite://" + filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "Failed to configure test database")

	ctx := context.Background()
	require.NoError(t, db.Connect(ctx), "Failed to connect test database")
	require.NoError(t, db.EnsureSchema(ctx), "Failed to create schema")

	t.Cleanup(func() { db.Disconnect() })
	return db
}

func setupTestRepo(t testing.TB) *Repository {
	t.Helper()
	return NewRepository(newTestDB(t))
}

// setCreatedDate pins created_date so ordering tests do not depend on the clock.
func setCreatedDate(t testing.TB, repo *Repository, id int64, at time.Time) {
	t.Helper()

	pool, err := repo.db.conn()
	require.NoError(t, err)
	_, err = pool.Exec(`UPDATE notes SET created_date = ? WHERE id = ?`,
		at.UTC().Format("2006-01-02 15:04:05.000"), id)
	require.NoError(t, err)
}

func boolPtr(b bool) *bool { return &b }
