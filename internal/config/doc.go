// Package config provides configuration management for vimtag.
//
// Settings live in a JSON file, by default at
// <user config dir>/vimtag/config.json. A missing file means defaults:
//
//	settings, err := config.Load(config.DefaultPath())
//	// Editor: unset (fall back to $EDITOR, vim, nvim)
//	// RenameFiles: true
//	// MaxFileNameLength: 200
//
// Command-line flags override loaded settings in main; nothing in the
// pipeline reads the environment or the config file directly.
package config
