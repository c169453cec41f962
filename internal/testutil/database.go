package testutil

import (
	"testing"

	"vshare/internal/database"
	"vshare/internal/share"
)

// NewTestDatabase creates a new in-memory SQLite database with the
// schema applied. The database is automatically closed when the test
// completes.
func NewTestDatabase(t *testing.T) share.Database {
	t.Helper()

	db, err := database.NewSQLiteDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
