package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/vimtag/internal/model"
	"github.com/handiism/vimtag/internal/tags"
)

// ErrNotFound means the target path does not exist or is not a
// directory. This is fatal: there is nothing to edit.
var ErrNotFound = errors.New("directory not found")

// Skipped records a file the scanner matched by extension but could
// not read tags from (corrupt, unsupported variant, unreadable).
// Skips are reported but never fatal.
type Skipped struct {
	Path   string
	Reason error
}

// Scanner collects the audio files of one directory.
type Scanner struct {
	// Read reads a file's tags. Defaults to tags.ReadFile; tests
	// substitute their own.
	Read func(path string) (model.Tags, error)
}

// New returns a Scanner backed by the real tag stores.
func New() *Scanner {
	return &Scanner{Read: tags.ReadFile}
}

// Dir lists dir (non-recursively), keeps entries with a supported
// audio extension in name order, and reads each one's tags. Files
// whose tags cannot be read are returned in skipped instead.
func (s *Scanner) Dir(dir string) (files []*model.AudioFile, skipped []Skipped, err error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s is not a directory", ErrNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	// os.ReadDir sorts by name, which fixes the document and summary
	// order for the whole run.
	for _, entry := range entries {
		if entry.IsDir() || !tags.IsSupported(filepath.Ext(entry.Name())) {
			continue
		}

		path, err := filepath.Abs(filepath.Join(dir, entry.Name()))
		if err != nil {
			skipped = append(skipped, Skipped{Path: entry.Name(), Reason: err})
			continue
		}

		fileTags, err := s.Read(path)
		if err != nil {
			skipped = append(skipped, Skipped{Path: path, Reason: err})
			continue
		}

		files = append(files, &model.AudioFile{Path: path, Tags: fileTags})
	}

	return files, skipped, nil
}
