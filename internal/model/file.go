package model

import "path/filepath"

// AudioFile is one supported audio file found by the scanner.
//
// Tags holds the values captured at scan time. The parser diffs the
// edited document against this snapshot, so the snapshot must not be
// mutated once the editor has been launched.
type AudioFile struct {
	// Path is the absolute path of the file. It doubles as the block
	// header in the edit document, which is why it must be unique and
	// must survive the editor round trip byte for byte.
	Path string

	// Tags are the editable tags read from the file at scan time.
	Tags Tags
}

// Name returns the base name of the file, for display.
func (f *AudioFile) Name() string {
	return filepath.Base(f.Path)
}
