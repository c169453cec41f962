package database

import (
	"database/sql"
	"fmt"

	"vshare/internal/database/migrations"
	"vshare/internal/share"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteDatabase implements share.Database using SQLite.
type SQLiteDatabase struct {
	db   *sql.DB
	path string
}

// NewSQLiteDatabase opens (or creates) the database at path and brings
// its schema to the latest version. path can be a file path or
// ":memory:" for an in-memory database.
func NewSQLiteDatabase(path string) (*SQLiteDatabase, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return &SQLiteDatabase{db: db, path: path}, nil
}

// OpenConnection opens and configures a SQLite connection with the
// PRAGMAs the schema relies on. Exported for tests that need a bare
// configured connection.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every pooled connection to ":memory:" gets its own empty database.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// SQLite ships with foreign keys OFF for backward compatibility.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// CreateShare records a completed share operation.
func (s *SQLiteDatabase) CreateShare(rec *share.ShareRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO shares (id, video_path, page_path, page_url, qr_path, warnings, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.VideoPath, rec.PagePath, rec.PageURL, rec.QRPath, rec.Warnings, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting share record: %w", err)
	}
	return nil
}

// ListShares returns up to limit share records, newest first.
func (s *SQLiteDatabase) ListShares(limit int) ([]*share.ShareRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, video_path, page_path, page_url, qr_path, warnings, created_at
		 FROM shares ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying share records: %w", err)
	}
	defer rows.Close()

	var recs []*share.ShareRecord
	for rows.Next() {
		var rec share.ShareRecord
		if err := rows.Scan(&rec.ID, &rec.VideoPath, &rec.PagePath, &rec.PageURL, &rec.QRPath, &rec.Warnings, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning share record: %w", err)
		}
		recs = append(recs, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading share records: %w", err)
	}
	return recs, nil
}

// Close closes the underlying database connection.
func (s *SQLiteDatabase) Close() error {
	return s.db.Close()
}

// Compile-time check that SQLiteDatabase implements share.Database.
var _ share.Database = (*SQLiteDatabase)(nil)
