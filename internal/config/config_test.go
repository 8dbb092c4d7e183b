package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error for a missing file: %v", err)
	}
	if cfg.DefaultOptLevel != Default().DefaultOptLevel {
		t.Errorf("DefaultOptLevel = %q, want the default", cfg.DefaultOptLevel)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	original := Default()
	original.DefaultOptLevel = "O3"
	original.PersistSessions = true

	if err := original.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.DefaultOptLevel != "O3" {
		t.Errorf("DefaultOptLevel = %q, want O3", loaded.DefaultOptLevel)
	}
	if !loaded.PersistSessions {
		t.Error("PersistSessions = false, want true")
	}
}

func TestLoadMalformedYAMLReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("not: [valid: yaml"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Load() with malformed YAML returned no error")
	}
	if cfg.DefaultOptLevel != Default().DefaultOptLevel {
		t.Error("Load() should still return usable defaults on parse failure")
	}
}
