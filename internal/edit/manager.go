package edit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/vimtag/internal/config"
	"github.com/handiism/vimtag/internal/document"
	"github.com/handiism/vimtag/internal/editor"
	ioutils "github.com/handiism/vimtag/internal/io"
	"github.com/handiism/vimtag/internal/model"
	"github.com/handiism/vimtag/internal/scan"
	"github.com/handiism/vimtag/internal/tags"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents one progress update from the pipeline.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Outcome errors of a run. Main maps these to exit codes.
var (
	// ErrNoFiles means the directory contained no supported audio
	// files; the editor was never launched.
	ErrNoFiles = errors.New("no supported audio files found")

	// ErrPartialFailure means the run completed but one or more files
	// failed during the write phase. Details are in the Summary.
	ErrPartialFailure = errors.New("some files failed")
)

// Failure records one file that failed during the write phase.
type Failure struct {
	Path   string
	Reason string
}

// Summary is the result of one batch-edit run.
type Summary struct {
	// Found is the number of editable files scanned.
	Found int

	// Updated counts files whose tags were written.
	Updated int

	// Renamed counts files renamed after a title change.
	Renamed int

	// Unchanged counts files the user left untouched.
	Unchanged int

	// Skipped counts files matched by extension but unreadable.
	Skipped int

	// Conflicts counts renames skipped because the target existed.
	Conflicts int

	// Failed counts files whose tag write or rename errored.
	Failed   int
	Failures []Failure
}

func (s *Summary) fail(path string, err error) {
	s.Failed++
	s.Failures = append(s.Failures, Failure{Path: path, Reason: err.Error()})
}

// Manager runs the batch-edit pipeline: scan the directory, render the
// edit document, hand it to the editor, parse the edits back, then
// apply tag writes and renames one file at a time.
type Manager struct {
	// DryRun runs the full pipeline but writes and renames nothing.
	DryRun bool

	settings   *config.Settings
	onProgress func(ProgressEvent)

	// Seams for tests; production values are set by NewManager.
	scanner       *scan.Scanner
	resolveEditor func(preferred string) (string, []string, error)
	runEditor     func(ctx context.Context, command string, args []string, content []byte) (edited []byte, tmpPath string, err error)
	applyTags     func(path string, changes model.ChangeSet) error
	renameFile    func(oldPath, newPath string) error
	statFile      func(path string) (os.FileInfo, error)
}

// NewManager creates a pipeline manager. onProgress receives every
// progress event; it may be nil.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:      settings,
		onProgress:    onProgress,
		scanner:       scan.New(),
		resolveEditor: editor.Resolve,
		runEditor: func(ctx context.Context, command string, args []string, content []byte) ([]byte, string, error) {
			inv := &editor.Invoker{Command: command, Args: args}
			return inv.Edit(ctx, content)
		},
		applyTags:  tags.ApplyFile,
		renameFile: os.Rename,
		statFile:   os.Stat,
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}

func (m *Manager) progressf(level ProgressLevel, format string, args ...any) {
	m.progress(ProgressEvent{Message: fmt.Sprintf(format, args...), Level: level})
}

// Run executes one batch edit over dir and returns the run summary.
// The summary is valid even when the returned error is ErrNoFiles or
// ErrPartialFailure.
func (m *Manager) Run(ctx context.Context, dir string) (*Summary, error) {
	summary := &Summary{}

	files, skipped, err := m.scanner.Dir(dir)
	if err != nil {
		return summary, err
	}
	for _, s := range skipped {
		summary.Skipped++
		m.progressf(LevelWarning, "Skipping unreadable file %s: %v", filepath.Base(s.Path), s.Reason)
	}

	summary.Found = len(files)
	if len(files) == 0 {
		return summary, fmt.Errorf("%w in %s", ErrNoFiles, dir)
	}
	m.progressf(LevelInfo, "Found %d audio file(s) in %s", len(files), dir)

	editorCmd, editorArgs, err := m.resolveEditor(m.settings.Editor)
	if err != nil {
		return summary, err
	}
	m.progressf(LevelVerbose, "Using editor: %s", editorCmd)

	doc := document.Format(files)
	m.progressf(LevelInfo, "Opening metadata in %s; save and close to apply changes", filepath.Base(editorCmd))

	edited, tmpPath, err := m.runEditor(ctx, editorCmd, editorArgs, doc)
	if err != nil {
		if tmpPath != "" {
			m.progressf(LevelWarning, "Your edits are preserved at %s", tmpPath)
		}
		return summary, err
	}

	changeSets, warnings, err := document.Parse(edited, files)
	for _, w := range warnings {
		m.progress(ProgressEvent{Message: w, Level: LevelWarning})
	}
	if err != nil {
		// A structurally broken document aborts before any write, and
		// the temp file is the only copy of the user's edits.
		m.progressf(LevelWarning, "Your edits are preserved at %s", tmpPath)
		return summary, err
	}

	if err := os.Remove(tmpPath); err != nil {
		m.progressf(LevelWarning, "Could not remove temp file %s: %v", tmpPath, err)
	}

	for _, cs := range changeSets {
		if cs.Empty() {
			summary.Unchanged++
			m.progressf(LevelVerbose, "No changes for %s", filepath.Base(cs.Path))
			continue
		}
		m.applyOne(cs, summary)
	}

	if summary.Failed > 0 {
		return summary, ErrPartialFailure
	}
	return summary, nil
}

// applyOne writes one file's change set and, when the title changed,
// renames the file. Every error here is recorded in the summary and
// isolated from the rest of the batch.
func (m *Manager) applyOne(cs model.ChangeSet, summary *Summary) {
	name := filepath.Base(cs.Path)

	if m.DryRun {
		m.progressf(LevelInfo, "[dry run] Would update %s (%d tag(s))", name, len(cs.Changes))
	} else {
		if err := m.applyTags(cs.Path, cs); err != nil {
			summary.fail(cs.Path, err)
			m.progressf(LevelError, "Failed to update %s: %v", name, err)
			return
		}
		summary.Updated++
		for _, change := range cs.Changes {
			if change.New == "" {
				m.progressf(LevelVerbose, "%s: cleared %s", name, change.Field)
			} else {
				m.progressf(LevelVerbose, "%s: set %s = %s", name, change.Field, change.New)
			}
		}
		m.progressf(LevelSuccess, "Updated %s", name)
	}

	newTitle, ok := cs.TitleChange()
	if !ok || !m.settings.RenameFiles {
		return
	}

	target := ioutils.RenameTarget(cs.Path, newTitle, m.settings.MaxFileNameLength)
	if target == cs.Path {
		m.progressf(LevelVerbose, "%s: new title keeps the same file name", name)
		return
	}

	if _, err := m.statFile(target); err == nil {
		summary.Conflicts++
		m.progressf(LevelWarning, "Not renaming %s: %s already exists", name, filepath.Base(target))
		return
	}

	if m.DryRun {
		m.progressf(LevelInfo, "[dry run] Would rename %s to %s", name, filepath.Base(target))
		return
	}

	if err := m.renameFile(cs.Path, target); err != nil {
		summary.fail(cs.Path, fmt.Errorf("rename: %w", err))
		m.progressf(LevelError, "Failed to rename %s: %v", name, err)
		return
	}
	summary.Renamed++
	m.progressf(LevelSuccess, "Renamed %s to %s", name, filepath.Base(target))
}
