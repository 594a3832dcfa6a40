package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/treesh/internal/store"
	"github.com/footprint-tools/treesh/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, migrations.Run(db), "failed to run migrations")

	return db
}

// NewTestStore returns a binding store over NewTestDB.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedBindings records one update per mobile node, in order, then
// acknowledges acked of them starting from the newest.
func SeedBindings(t *testing.T, s *store.Store, nodes []string, acked int) {
	t.Helper()

	for _, node := range nodes {
		_, err := s.RecordUpdate(node)
		require.NoError(t, err, "failed to seed binding for %s", node)
	}
	for i := 0; i < acked; i++ {
		_, err := s.AckLatest()
		require.NoError(t, err, "failed to ack seeded binding")
	}
}
