// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"todolist-api/infrastructure/database"
)

// NewTestDB opens a migrated SQLite database in a temp dir that is removed
// when the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewDatabase(database.DatabaseConfig{
		Driver:     database.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
		LogLevel:   "silent",
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
