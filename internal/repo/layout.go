package repo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Layout manages the directory structure of a share repository:
//
//	<root>/
//	  videos/   copied video files, named by sanitized source name
//	  pages/    generated player pages
//	  qrcodes/  QR images (created on first use)
//
// videos/ and pages/ are created up front; a failure there is the only
// fatal initialization path. Name collisions overwrite silently.
type Layout struct {
	root       string
	videosDir  string
	pagesDir   string
	qrcodesDir string
}

// NewLayout ensures videos/ and pages/ exist under root.
func NewLayout(root string) (*Layout, error) {
	videosDir := filepath.Join(root, "videos")
	pagesDir := filepath.Join(root, "pages")

	if err := os.MkdirAll(videosDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create videos directory: %w", err)
	}
	if err := os.MkdirAll(pagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create pages directory: %w", err)
	}

	return &Layout{
		root:       root,
		videosDir:  videosDir,
		pagesDir:   pagesDir,
		qrcodesDir: filepath.Join(root, "qrcodes"),
	}, nil
}

// Root returns the repository root path.
func (l *Layout) Root() string { return l.root }

// CopyVideo copies the source file into videos/ under the given name,
// preserving file mode and modification time. An existing file with
// that name is overwritten without warning.
func (l *Layout) CopyVideo(src, name string) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("stat source video: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("source is a directory: %s", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("opening source video: %w", err)
	}
	defer in.Close()

	destPath := filepath.Join(l.videosDir, name)
	out, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("creating video copy: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("copying video content: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing video copy: %w", err)
	}

	if err := os.Chmod(destPath, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("preserving file mode: %w", err)
	}
	if err := os.Chtimes(destPath, info.ModTime(), info.ModTime()); err != nil {
		return "", fmt.Errorf("preserving modification time: %w", err)
	}

	return destPath, nil
}

// WritePage writes a player page into pages/ under the given name,
// overwriting any existing page with that name.
func (l *Layout) WritePage(name, content string) (string, error) {
	pagePath := filepath.Join(l.pagesDir, name)
	if err := os.WriteFile(pagePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing player page: %w", err)
	}
	return pagePath, nil
}

// QRPath ensures qrcodes/ exists and returns the path for a QR image
// with the given name.
func (l *Layout) QRPath(name string) (string, error) {
	if err := os.MkdirAll(l.qrcodesDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create qrcodes directory: %w", err)
	}
	return filepath.Join(l.qrcodesDir, name), nil
}

// Rel returns the given path relative to the repository root.
func (l *Layout) Rel(path string) (string, error) {
	rel, err := filepath.Rel(l.root, path)
	if err != nil {
		return "", fmt.Errorf("calculating relative path: %w", err)
	}
	return rel, nil
}
