package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Editor is the editor command to prefer over $EDITOR and the
	// vim/nvim fallbacks. Empty means no preference.
	Editor string `json:"editor"`

	// RenameFiles controls whether a changed title also renames the
	// file on disk.
	RenameFiles bool `json:"rename_files"`

	// MaxFileNameLength caps the length (in runes, before the
	// extension) of file names derived from titles.
	MaxFileNameLength int `json:"max_file_name_length"`

	// Verbose shows per-file detail output by default.
	Verbose bool `json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Editor:            "",
		RenameFiles:       true,
		MaxFileNameLength: 200,
		Verbose:           false,
	}
}

// DefaultPath returns the default config file location
// (<user config dir>/vimtag/config.json), or "" when the user config
// directory cannot be determined.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "vimtag", "config.json")
}

// Load reads settings from a JSON file. A missing file is not an
// error; defaults are returned.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
