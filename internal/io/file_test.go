package ioutils

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file", "normal-file"},
		{"file:with:colons", "filewithcolons"},
		{"file<with>brackets", "filewithbrackets"},
		{"file/with\\slashes", "filewithslashes"},
		{"file|with|pipes", "filewithpipes"},
		{"file?with*wildcards", "filewithwildcards"},
		{"file\"with\"quotes", "filewithquotes"},
		{"New Name!!", "New Name"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"  trailing spaces   ", "trailing spaces"},
		{"control\x01chars", "controlchars"},
		{"***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFileNameForTitle(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		ext    string
		maxLen int
		want   string
	}{
		{"plain", "New Name", ".mp3", 200, "New Name.mp3"},
		{"stripped punctuation", "New Name!!", ".mp3", 200, "New Name.mp3"},
		{"all invalid falls back", "???", ".flac", 200, "untitled.flac"},
		{"empty falls back", "", ".ogg", 200, "untitled.ogg"},
		{"clamped", strings.Repeat("a", 300), ".mp3", 10, strings.Repeat("a", 10) + ".mp3"},
		{"clamp trims trailing space", "abcd efgh", ".mp3", 5, "abcd.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FileNameForTitle(tt.title, tt.ext, tt.maxLen)
			if got != tt.want {
				t.Errorf("FileNameForTitle(%q, %q, %d) = %q, want %q",
					tt.title, tt.ext, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestRenameTarget(t *testing.T) {
	got := RenameTarget(filepath.Join("music", "old_name.mp3"), "New Name!!", 200)
	want := filepath.Join("music", "New Name.mp3")
	if got != want {
		t.Errorf("RenameTarget() = %q, want %q", got, want)
	}

	// Extension comes from the file, not the title.
	got = RenameTarget(filepath.Join("music", "track.flac"), "Title.mp3", 200)
	want = filepath.Join("music", "Title.mp3.flac")
	if got != want {
		t.Errorf("RenameTarget() = %q, want %q", got, want)
	}
}
