package database

import (
	"os"
	"path/filepath"
	"testing"

	"vshare/internal/config"
)

func TestNewDatabaseFromConfig(t *testing.T) {
	t.Run("sqlite creates data dir and db file", func(t *testing.T) {
		dataDir := filepath.Join(t.TempDir(), "db")

		db, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "sqlite", DataDir: dataDir})
		if err != nil {
			t.Fatalf("NewDatabaseFromConfig() error = %v", err)
		}
		defer db.Close()

		if _, err := os.Stat(filepath.Join(dataDir, "shares.db")); err != nil {
			t.Errorf("database file not created: %v", err)
		}
	})

	t.Run("sqlite requires data_dir", func(t *testing.T) {
		if _, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "sqlite"}); err == nil {
			t.Error("expected error for missing data_dir")
		}
	})

	t.Run("memory", func(t *testing.T) {
		db, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "memory"})
		if err != nil {
			t.Fatalf("NewDatabaseFromConfig() error = %v", err)
		}
		db.Close()
	})

	t.Run("unknown type", func(t *testing.T) {
		if _, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "postgres"}); err == nil {
			t.Error("expected error for unknown type")
		}
	})
}
