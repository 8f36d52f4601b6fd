package tags

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/vimtag/internal/model"
)

// ErrUnsupported is returned by ForPath for file extensions vimtag
// does not handle.
var ErrUnsupported = errors.New("unsupported audio format")

// Store reads and writes the editable tags of one audio format.
//
// Read returns the current tags, with every editable field present
// (missing tags map to empty strings). Apply writes the changed fields
// from the change set back to the file; a change with an empty New
// value removes the tag from the file.
type Store interface {
	Read(path string) (model.Tags, error)
	Apply(path string, changes model.ChangeSet) error
}

var stores = map[string]Store{
	".mp3":  mp3Store{},
	".flac": flacStore{},
	".m4a":  taglibStore{},
	".ogg":  taglibStore{},
	".opus": taglibStore{},
	".wav":  taglibStore{},
}

// IsSupported reports whether ext (including the leading dot, any
// case) names a supported audio format.
func IsSupported(ext string) bool {
	_, ok := stores[strings.ToLower(ext)]
	return ok
}

// ForPath selects the tag store for path based on its extension.
func ForPath(path string) (Store, error) {
	ext := strings.ToLower(filepath.Ext(path))
	store, ok := stores[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
	return store, nil
}

// ReadFile reads the editable tags of the file at path, dispatching on
// its extension.
func ReadFile(path string) (model.Tags, error) {
	store, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	return store.Read(path)
}

// ApplyFile writes a change set to the file at path, dispatching on
// its extension.
func ApplyFile(path string, changes model.ChangeSet) error {
	store, err := ForPath(path)
	if err != nil {
		return err
	}
	return store.Apply(path, changes)
}
