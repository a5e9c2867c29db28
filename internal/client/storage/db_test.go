package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesTables(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "sub", "app.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.PingContext(ctx))
	require.True(t, tableExists(t, db, "goose_db_version"))
	require.True(t, tableExists(t, db, "kv"))
}

func TestInitDatabase_InMemory(t *testing.T) {
	db, err := InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.True(t, tableExists(t, db, "kv"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
	require.True(t, tableExists(t, db, "kv"))
}

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()

	for _, driver := range []string{DriverSQLite, DriverFile, DriverMemory} {
		t.Run(driver, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "store")
			repo, closer, err := Open(ctx, driver, path)
			require.NoError(t, err)
			require.NotNil(t, repo)
			t.Cleanup(func() { _ = closer.Close() })

			require.NoError(t, repo.Set(ctx, "k", []byte("v")))
			v, err := repo.Get(ctx, "k")
			require.NoError(t, err)
			require.Equal(t, []byte("v"), v)
		})
	}
}

func TestOpen_SQLitePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	repo, closer, err := Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, "ds_users", []byte(`{}`)))
	require.NoError(t, closer.Close())

	repo, closer, err = Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	defer closer.Close()

	v, err := repo.Get(ctx, "ds_users")
	require.NoError(t, err)
	require.Equal(t, []byte(`{}`), v)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), "redis", "x")
	require.ErrorIs(t, err, ErrUnknownDriver)
}
