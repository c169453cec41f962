package app

import (
	"fmt"
	"os"
	"time"

	"vshare/internal/config"
	"vshare/internal/database"
	"vshare/internal/gitcmd"
	"vshare/internal/qr"
	"vshare/internal/repo"
	"vshare/internal/share"
)

// ShareApp is the application layer between the CLI and share.Service.
// It constructs all dependencies from config and manages their
// lifecycle on Close.
type ShareApp struct {
	cfg     *config.Config
	db      share.Database
	service *share.Service
	logFile *os.File
}

// NewShareApp creates a fully wired ShareApp from the given config.
// operation identifies the CLI command being run (e.g. "Share",
// "GetHistory") and tags every log line of this run.
// The caller must call Close when done.
func NewShareApp(cfg *config.Config, operation string) (*ShareApp, error) {
	// The only fatal initialization path: the managed directories must
	// exist before anything else runs.
	layout, err := repo.NewLayout(cfg.RepoDir)
	if err != nil {
		return nil, fmt.Errorf("initializing repository layout: %w", err)
	}

	git := gitcmd.NewRunner(cfg.RepoDir, cfg.Git.Binary)

	db, err := database.NewDatabaseFromConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}

	opID := time.Now().UTC().Format("20060102T150405Z") + "-" + operation
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}

	svc := share.NewService(layout, git, qr.Encoder{}, db, baseURL,
		&slogAdapter{l: logger}, share.RealClock{}, share.UUIDGenerator{})

	return &ShareApp{
		cfg:     cfg,
		db:      db,
		service: svc,
		logFile: logFile,
	}, nil
}

// Share runs the share flow for the given video path.
func (a *ShareApp) Share(videoPath string) (*share.Result, error) {
	return a.service.Share(videoPath)
}

// History returns the most recent share operations.
func (a *ShareApp) History(limit int) ([]*share.ShareRecord, error) {
	return a.service.History(limit)
}

// Close releases all resources.
func (a *ShareApp) Close() error {
	var firstErr error

	if err := a.db.Close(); err != nil {
		firstErr = fmt.Errorf("closing database: %w", err)
	}
	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}
