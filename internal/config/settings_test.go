package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope", "config.json"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	defaults := DefaultSettings()
	if *settings != *defaults {
		t.Errorf("Load() = %+v, want defaults %+v", settings, defaults)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vimtag", "config.json")

	settings := DefaultSettings()
	settings.Editor = "nvim"
	settings.RenameFiles = false
	settings.MaxFileNameLength = 64

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *loaded != *settings {
		t.Errorf("Load() = %+v, want %+v", loaded, settings)
	}
}
