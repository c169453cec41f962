package repo

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewLayout(t *testing.T) {
	t.Run("creates managed directories", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "repo")

		l, err := NewLayout(root)
		if err != nil {
			t.Fatalf("NewLayout() error = %v", err)
		}

		for _, dir := range []string{"videos", "pages"} {
			if _, err := os.Stat(filepath.Join(root, dir)); err != nil {
				t.Errorf("%s directory not created: %v", dir, err)
			}
		}

		// qrcodes is created on first use, not up front.
		if _, err := os.Stat(filepath.Join(root, "qrcodes")); !os.IsNotExist(err) {
			t.Error("qrcodes directory created eagerly")
		}

		if l.Root() != root {
			t.Errorf("Root() = %q, want %q", l.Root(), root)
		}
	})

	t.Run("works with existing directories", func(t *testing.T) {
		root := t.TempDir()
		if err := os.MkdirAll(filepath.Join(root, "videos"), 0755); err != nil {
			t.Fatal(err)
		}

		if _, err := NewLayout(root); err != nil {
			t.Fatalf("NewLayout() error = %v", err)
		}
	})
}

func TestLayout_CopyVideo(t *testing.T) {
	setup := func(t *testing.T) (*Layout, string) {
		t.Helper()
		l, err := NewLayout(t.TempDir())
		if err != nil {
			t.Fatalf("NewLayout() error = %v", err)
		}
		return l, t.TempDir()
	}

	t.Run("copies content and metadata", func(t *testing.T) {
		l, srcDir := setup(t)
		content := []byte("video content")
		src := filepath.Join(srcDir, "clip.mp4")
		if err := os.WriteFile(src, content, 0600); err != nil {
			t.Fatal(err)
		}
		mtime := time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC)
		if err := os.Chtimes(src, mtime, mtime); err != nil {
			t.Fatal(err)
		}

		dest, err := l.CopyVideo(src, "clip.mp4")
		if err != nil {
			t.Fatalf("CopyVideo() error = %v", err)
		}

		got, err := os.ReadFile(dest)
		if err != nil {
			t.Fatalf("reading copy: %v", err)
		}
		if !bytes.Equal(got, content) {
			t.Error("copy is not byte-identical")
		}

		info, err := os.Stat(dest)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("mode = %v, want 0600", info.Mode().Perm())
		}
		if !info.ModTime().Equal(mtime) {
			t.Errorf("mtime = %v, want %v", info.ModTime(), mtime)
		}
	})

	t.Run("overwrites existing copy silently", func(t *testing.T) {
		l, srcDir := setup(t)
		src := filepath.Join(srcDir, "clip.mp4")

		if err := os.WriteFile(src, []byte("first, longer content"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := l.CopyVideo(src, "clip.mp4"); err != nil {
			t.Fatalf("first CopyVideo() error = %v", err)
		}

		if err := os.WriteFile(src, []byte("second"), 0644); err != nil {
			t.Fatal(err)
		}
		dest, err := l.CopyVideo(src, "clip.mp4")
		if err != nil {
			t.Fatalf("second CopyVideo() error = %v", err)
		}

		got, _ := os.ReadFile(dest)
		if string(got) != "second" {
			t.Errorf("copy content = %q, want %q", got, "second")
		}
	})

	t.Run("missing source fails", func(t *testing.T) {
		l, srcDir := setup(t)

		if _, err := l.CopyVideo(filepath.Join(srcDir, "nope.mp4"), "nope.mp4"); err == nil {
			t.Error("CopyVideo() expected error for missing source")
		}
	})

	t.Run("directory source fails", func(t *testing.T) {
		l, srcDir := setup(t)

		if _, err := l.CopyVideo(srcDir, "dir"); err == nil {
			t.Error("CopyVideo() expected error for directory source")
		}
	})
}

func TestLayout_WritePage(t *testing.T) {
	l, err := NewLayout(t.TempDir())
	if err != nil {
		t.Fatalf("NewLayout() error = %v", err)
	}

	path, err := l.WritePage("20240101_120000_clip.html", "<html></html>")
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading page: %v", err)
	}
	if string(got) != "<html></html>" {
		t.Errorf("page content = %q", got)
	}
	if filepath.Dir(path) != filepath.Join(l.Root(), "pages") {
		t.Errorf("page written outside pages/: %s", path)
	}
}

func TestLayout_QRPath(t *testing.T) {
	l, err := NewLayout(t.TempDir())
	if err != nil {
		t.Fatalf("NewLayout() error = %v", err)
	}

	path, err := l.QRPath("clip_qr.png")
	if err != nil {
		t.Fatalf("QRPath() error = %v", err)
	}

	if path != filepath.Join(l.Root(), "qrcodes", "clip_qr.png") {
		t.Errorf("QRPath() = %q", path)
	}
	if _, err := os.Stat(filepath.Join(l.Root(), "qrcodes")); err != nil {
		t.Errorf("qrcodes directory not created on first use: %v", err)
	}
}

func TestLayout_Rel(t *testing.T) {
	root := t.TempDir()
	l, err := NewLayout(root)
	if err != nil {
		t.Fatalf("NewLayout() error = %v", err)
	}

	rel, err := l.Rel(filepath.Join(root, "pages", "p.html"))
	if err != nil {
		t.Fatalf("Rel() error = %v", err)
	}
	if rel != filepath.Join("pages", "p.html") {
		t.Errorf("Rel() = %q, want %q", rel, filepath.Join("pages", "p.html"))
	}
}
