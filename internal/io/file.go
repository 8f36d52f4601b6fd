package ioutils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// FallbackName is used when sanitization removes every character of a
// title, so a rename never produces an empty file name.
const FallbackName = "untitled"

var (
	// Characters that are invalid in file names on at least one
	// supported platform (Windows has the most restrictive rules),
	// plus control characters. '!' is stripped as well so titles like
	// "New Name!!" produce shell-friendly file names.
	invalidChars = regexp.MustCompile(`[<>:"/\\|?*!\x00-\x1f]`)

	trailingDots = regexp.MustCompile(`\.+$`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// SanitizeFileName transforms a tag value into a safe file name
// component.
//
// The following transformations are applied, in order:
//   - invalid characters are removed
//   - runs of whitespace collapse to a single space
//   - trailing dots are removed (a Windows limitation)
//   - leading and trailing spaces are removed
//
// The result can be empty; callers that need a usable name should go
// through FileNameForTitle instead.
//
// Example:
//
//	SanitizeFileName("Song: Part 1/2") // "Song Part 12"
//	SanitizeFileName("New Name!!")     // "New Name"
//	SanitizeFileName("Track...")       // "Track"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "")
	name = whitespace.ReplaceAllString(name, " ")
	name = trailingDots.ReplaceAllString(name, "")
	return strings.Trim(name, " ")
}

// FileNameForTitle builds a file name from a tag title, preserving ext
// (which includes the leading dot) and clamping the base name to maxLen
// runes. A title that sanitizes to nothing yields FallbackName.
func FileNameForTitle(title, ext string, maxLen int) string {
	base := SanitizeFileName(title)
	if base == "" {
		base = FallbackName
	}
	if maxLen > 0 {
		if runes := []rune(base); len(runes) > maxLen {
			base = strings.Trim(string(runes[:maxLen]), " ")
		}
	}
	return base + ext
}

// RenameTarget computes the path a file should be renamed to after its
// title changed. The file stays in its directory and keeps its
// extension; only the base name is derived from the new title.
func RenameTarget(path, title string, maxLen int) string {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	return filepath.Join(dir, FileNameForTitle(title, ext, maxLen))
}
