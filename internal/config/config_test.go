package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestManager_ReadWrite_RoundTrip(t *testing.T) {
	original := &Config{
		RepoDir: "/home/user/camforu",
		BaseURL: "https://example.github.io/repo",
		LogDir:  "/home/user/.local/share/vshare/log",
		Git:     GitConfig{Binary: "/usr/local/bin/git"},
		Database: DatabaseConfig{
			Type:    "sqlite",
			DataDir: "/home/user/.local/share/vshare/db",
		},
	}

	var buf bytes.Buffer
	m := &Manager{}

	if err := m.Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.RepoDir != original.RepoDir {
		t.Errorf("RepoDir = %q, want %q", got.RepoDir, original.RepoDir)
	}
	if got.BaseURL != original.BaseURL {
		t.Errorf("BaseURL = %q, want %q", got.BaseURL, original.BaseURL)
	}
	if got.LogDir != original.LogDir {
		t.Errorf("LogDir = %q, want %q", got.LogDir, original.LogDir)
	}
	if got.Git.Binary != original.Git.Binary {
		t.Errorf("Git.Binary = %q, want %q", got.Git.Binary, original.Git.Binary)
	}
	if got.Database.Type != "sqlite" {
		t.Errorf("Database.Type = %q, want %q", got.Database.Type, "sqlite")
	}
	if got.Database.DataDir != original.Database.DataDir {
		t.Errorf("Database.DataDir = %q, want %q", got.Database.DataDir, original.Database.DataDir)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("/home/user/camforu", "/data/vshare")

	if cfg.RepoDir != "/home/user/camforu" {
		t.Errorf("RepoDir = %q, want %q", cfg.RepoDir, "/home/user/camforu")
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.LogDir != filepath.Join("/data/vshare", "log") {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
	if cfg.Git.Binary != "git" {
		t.Errorf("Git.Binary = %q, want %q", cfg.Git.Binary, "git")
	}
	if cfg.Database.Type != "sqlite" {
		t.Errorf("Database.Type = %q, want %q", cfg.Database.Type, "sqlite")
	}
	if cfg.Database.DataDir != filepath.Join("/data/vshare", "db") {
		t.Errorf("Database.DataDir = %q", cfg.Database.DataDir)
	}
}

func TestInit(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conf", "vshare.toml")
		cfg := NewConfig("/repo", "/data")

		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		got, err := ReadFromFile(path)
		if err != nil {
			t.Fatalf("ReadFromFile() error = %v", err)
		}
		if got.RepoDir != "/repo" {
			t.Errorf("RepoDir = %q, want %q", got.RepoDir, "/repo")
		}
	})

	t.Run("refuses to overwrite existing config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vshare.toml")
		if err := os.WriteFile(path, []byte("repo_dir = \"/old\"\n"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := Init(path, NewConfig("/new", "/data")); err == nil {
			t.Error("Init() expected error for existing config")
		}
	})
}

func TestReadFromFile_Missing(t *testing.T) {
	_, err := ReadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("ReadFromFile() expected error for missing file")
	}
}
