package database

import (
	"fmt"
	"os"
	"path/filepath"

	"vshare/internal/config"
	"vshare/internal/share"
)

// NewDatabaseFromConfig creates a share.Database based on the database
// config type.
func NewDatabaseFromConfig(cfg config.DatabaseConfig) (share.Database, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		return NewSQLiteDatabase(filepath.Join(cfg.DataDir, "shares.db"))
	case "memory":
		return NewSQLiteDatabase(":memory:")
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
