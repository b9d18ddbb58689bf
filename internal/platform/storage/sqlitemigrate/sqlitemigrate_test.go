package sqlitemigrate_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/ore-roller/internal/platform/storage/sqlitemigrate"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func count(t *testing.T, db *sql.DB, query string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(query).Scan(&n))
	return n
}

func TestApply_RunsOnceInOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openDB(t)
	fsys := fstest.MapFS{
		"m/002_index.sql":  {Data: []byte("-- +migrate Up\nCREATE INDEX idx_items_name ON items(name);\n-- +migrate Down\nDROP INDEX idx_items_name;")},
		"m/001_create.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY, name TEXT);")},
		"m/README.md":      {Data: []byte("not a migration")},
	}

	applied, err := sqlitemigrate.Apply(ctx, db, fsys, "m")
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create.sql", "002_index.sql"}, applied)

	again, err := sqlitemigrate.Apply(ctx, db, fsys, "m")
	require.NoError(t, err)
	assert.Empty(t, again)

	assert.Equal(t, 2, count(t, db, "SELECT COUNT(*) FROM schema_migrations"))
	assert.Equal(t, 1, count(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'idx_items_name'"))
}

func TestApply_FailedMigrationNotRecorded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openDB(t)
	fsys := fstest.MapFS{
		"001_bad.sql": {Data: []byte("CREATE TABLE;")},
	}

	_, err := sqlitemigrate.Apply(ctx, db, fsys, "")
	require.Error(t, err)
	assert.Equal(t, 0, count(t, db, "SELECT COUNT(*) FROM schema_migrations"))
}

func TestApply_ExistingTableTolerated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openDB(t)
	_, err := db.Exec("CREATE TABLE items(id TEXT PRIMARY KEY)")
	require.NoError(t, err)

	_, err = sqlitemigrate.Apply(ctx, db, fstest.MapFS{
		"001.sql": {Data: []byte("CREATE TABLE items(id TEXT PRIMARY KEY);")},
	}, ".")
	require.NoError(t, err)
}

func TestApply_NilDB(t *testing.T) {
	t.Parallel()

	_, err := sqlitemigrate.Apply(context.Background(), nil, fstest.MapFS{}, ".")
	require.Error(t, err)
}

func TestUpSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "SELECT 1;", want: "SELECT 1;"},
		{name: "up only", content: "-- +migrate Up\nSELECT 1;", want: "\nSELECT 1;"},
		{name: "up and down", content: "-- +migrate Up\nSELECT 1;\n-- +migrate Down\nSELECT 2;", want: "\nSELECT 1;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sqlitemigrate.UpSection(tt.content))
		})
	}
}
