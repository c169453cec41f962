package share

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vshare/internal/repo"
)

// pageTimeLayout gives second resolution; two shares of the same title
// within one second collide and the second overwrites the first.
const pageTimeLayout = "20060102_150405"

// Result describes the artifacts produced by a share operation.
type Result struct {
	VideoPath string
	PagePath  string
	PageURL   string
	QRPath    string
	// Warnings lists non-fatal failures (git staging/commit errors,
	// history recording errors). The flow continues past them, so a
	// non-empty list means the page URL may describe a page that was
	// never committed.
	Warnings []string
}

// Service is the orchestration layer that performs the share flow:
// copy the video into the repository, render its player page, stage
// and commit both, build the public page URL and render its QR code.
type Service struct {
	layout   *repo.Layout
	git      Git
	qr       QREncoder
	database Database
	baseURL  string
	logger   Logger
	clock    Clock
	idgen    IDGenerator
}

// NewService creates a Service with the provided dependencies.
// database may be nil, in which case shares are not recorded.
func NewService(layout *repo.Layout, git Git, qr QREncoder, database Database, baseURL string, logger Logger, clock Clock, idgen IDGenerator) *Service {
	return &Service{
		layout:   layout,
		git:      git,
		qr:       qr,
		database: database,
		baseURL:  baseURL,
		logger:   logger,
		clock:    clock,
		idgen:    idgen,
	}
}

// Share runs the full share flow for a single video file.
//
// The source must exist; copy, page and QR failures abort the flow.
// Git failures do not: they are logged, collected into
// Result.Warnings, and every remaining step still runs. Nothing is
// rolled back on failure — a copied video stays in place even when a
// later step fails.
func (s *Service) Share(videoPath string) (*Result, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return nil, fmt.Errorf("video file not found: %w", err)
	}

	safeName := SanitizeFileName(filepath.Base(videoPath))

	s.logger.Info("copying video", "source", videoPath, "name", safeName)
	target, err := s.layout.CopyVideo(videoPath, safeName)
	if err != nil {
		return nil, fmt.Errorf("copying video: %w", err)
	}

	title := SanitizeTitle(strings.TrimSuffix(safeName, filepath.Ext(safeName)))
	pageName := s.clock.Now().Format(pageTimeLayout) + "_" + title + ".html"

	s.logger.Info("writing player page", "page", pageName)
	pagePath, err := s.layout.WritePage(pageName, RenderPlayerPage(safeName, title))
	if err != nil {
		return nil, fmt.Errorf("writing player page: %w", err)
	}

	var warnings []string
	warn := func(step string, err error) {
		s.logger.Warn("step failed, continuing", "step", step, "error", err)
		warnings = append(warnings, fmt.Sprintf("%s: %v", step, err))
	}

	s.logger.Info("committing to git", "video", target, "page", pagePath)
	if _, err := s.git.Add(target); err != nil {
		warn("stage video", err)
	}
	if _, err := s.git.Add(pagePath); err != nil {
		warn("stage page", err)
	}
	if _, err := s.git.Commit("Add video: " + safeName); err != nil {
		warn("commit", err)
	}

	rel, err := s.layout.Rel(pagePath)
	if err != nil {
		return nil, err
	}
	pageURL := PageURL(s.baseURL, rel)

	qrPath, err := s.layout.QRPath(title + "_qr.png")
	if err != nil {
		return nil, err
	}
	s.logger.Info("rendering QR code", "url", pageURL, "path", qrPath)
	if err := s.qr.Encode(pageURL, qrPath); err != nil {
		return nil, fmt.Errorf("rendering QR code: %w", err)
	}

	res := &Result{
		VideoPath: target,
		PagePath:  pagePath,
		PageURL:   pageURL,
		QRPath:    qrPath,
		Warnings:  warnings,
	}

	if s.database != nil {
		rec := &ShareRecord{
			ID:        s.idgen.New(),
			VideoPath: target,
			PagePath:  pagePath,
			PageURL:   pageURL,
			QRPath:    qrPath,
			Warnings:  strings.Join(warnings, "\n"),
			CreatedAt: s.clock.Now(),
		}
		if err := s.database.CreateShare(rec); err != nil {
			warn("record share", err)
			res.Warnings = warnings
		}
	}

	s.logger.Info("share complete", "url", pageURL)
	return res, nil
}

// History returns the most recent share operations, ordered newest first.
func (s *Service) History(limit int) ([]*ShareRecord, error) {
	if s.database == nil {
		return nil, nil
	}
	recs, err := s.database.ListShares(limit)
	if err != nil {
		return nil, fmt.Errorf("listing shares: %w", err)
	}
	return recs, nil
}
