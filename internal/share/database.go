package share

import "time"

// ShareRecord is a persisted share operation.
type ShareRecord struct {
	ID        string
	VideoPath string
	PagePath  string
	PageURL   string
	QRPath    string
	// Warnings holds non-fatal failures joined by newlines, empty when
	// every step succeeded.
	Warnings  string
	CreatedAt time.Time
}

// Database records completed share operations.
type Database interface {
	CreateShare(rec *ShareRecord) error
	ListShares(limit int) ([]*ShareRecord, error)
	Close() error
}
