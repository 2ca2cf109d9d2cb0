// Package dbtest opens throwaway SQLite stores for package tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/sahilchouksey/pixel-portfolio/database"
	"gorm.io/gorm"
)

// NewStore opens a migrated SQLite store in the test's temp dir.
func NewStore(t testing.TB) *database.GORMStore {
	t.Helper()

	store, err := database.StartSQLite(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Init(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store
}

// NewDB is NewStore for callers that only need the handle.
func NewDB(t testing.TB) *gorm.DB {
	return NewStore(t).GetDB()
}
