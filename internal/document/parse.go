package document

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/handiism/vimtag/internal/model"
)

// Structural errors in the edited document. Both are fatal before any
// tag write: if a file's block is missing or duplicated, the document
// can no longer be applied unambiguously.
var (
	ErrMissingBlock   = errors.New("file block missing from edit document")
	ErrDuplicateBlock = errors.New("file block duplicated in edit document")
)

// Parse reads the edited document back and diffs it against the tags
// captured at scan time, returning one ChangeSet per original file in
// scan order.
//
// Validation rules:
//   - every original file's "# File:" header must appear exactly once
//     (ErrMissingBlock / ErrDuplicateBlock otherwise)
//   - headers for unknown files are skipped with a warning
//   - lines without a colon are skipped with a warning
//   - unrecognized tag keys are skipped with a warning
//
// Blocks may appear in any order. A field line the user deleted is
// treated like a blank value, which clears the tag.
func Parse(content []byte, originals []*model.AudioFile) ([]model.ChangeSet, []string, error) {
	known := make(map[string]bool, len(originals))
	for _, f := range originals {
		known[f.Path] = true
	}

	edited := make(map[string]model.Tags, len(originals))
	var warnings []string

	// current is the path of the block being read; empty means lines
	// are skipped (before the first header, or inside an unknown or
	// duplicated block).
	current := ""

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, filePrefix) {
			path := strings.TrimSpace(strings.TrimPrefix(line, filePrefix))
			switch {
			case !known[path]:
				warnings = append(warnings, fmt.Sprintf("line %d: header for unknown file ignored: %s", lineNo, path))
				current = ""
			case edited[path] != nil:
				return nil, warnings, fmt.Errorf("%w: %s", ErrDuplicateBlock, path)
			default:
				edited[path] = model.Tags{}
				current = path
			}
			continue
		}

		if line == "" || strings.HasPrefix(line, "#") {
			// Instruction lines and block separators carry no data.
			continue
		}

		if current == "" {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			warnings = append(warnings, fmt.Sprintf("line %d: malformed line skipped: %s", lineNo, line))
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !model.KnownField(key) {
			warnings = append(warnings, fmt.Sprintf("line %d: unrecognized tag %q ignored", lineNo, key))
			continue
		}
		edited[current][key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("read edit document: %w", err)
	}

	changeSets := make([]model.ChangeSet, 0, len(originals))
	for _, f := range originals {
		block, ok := edited[f.Path]
		if !ok {
			return nil, warnings, fmt.Errorf("%w: %s", ErrMissingBlock, f.Path)
		}
		changeSets = append(changeSets, model.ChangeSet{
			Path:    f.Path,
			Changes: f.Tags.Diff(block),
		})
	}
	return changeSets, warnings, nil
}
