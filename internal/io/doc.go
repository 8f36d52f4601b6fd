// Package ioutils provides file name utilities for vimtag.
//
// This package contains functions for:
//   - Sanitizing tag values into cross-platform file name components
//   - Computing rename targets when a file's title tag changed
//
// # Filename Sanitization
//
// Use SanitizeFileName to strip invalid characters from a candidate
// name:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // "Song Part 12"
//
// # Rename Targets
//
// RenameTarget derives the new path for a retitled file, preserving the
// directory and extension:
//
//	target := ioutils.RenameTarget("/music/old_name.mp3", "New Name!!", 200)
//	// "/music/New Name.mp3"
package ioutils
