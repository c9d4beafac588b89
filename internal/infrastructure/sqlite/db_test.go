package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"mushaf/internal/bookmarks/domain"
)

func TestOpen_CreatesAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.db")

	db, repo, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	b, err := domain.NewBookmark(1, 1, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(b), "migrated schema should accept writes")
}

func TestOpen_IdempotentMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.db")

	db, _, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening an already-migrated database must not fail.
	db, repo, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	list, err := repo.ListAll()
	require.NoError(t, err)
	require.Empty(t, list)
}
