// Package storetest opens migrated in-memory catalog databases for tests.
package storetest

import (
	"testing"

	"menu-manager/core/database"
	"menu-manager/feature/catalog/store"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a migrated in-memory SQLite database that is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// New returns a store over a fresh database.
func New(t testing.TB) *store.Store {
	t.Helper()
	return store.New(Open(t), store.NewAllocator())
}

// Exec runs seed statements and fails the test on the first error.
func Exec(t testing.TB, db *gorm.DB, statements ...string) {
	t.Helper()
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error, stmt)
	}
}
