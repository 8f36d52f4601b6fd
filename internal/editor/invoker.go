package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var (
	// ErrNoEditor means no usable editor binary was found.
	ErrNoEditor = errors.New("no editor found (set $EDITOR or install vim/nvim)")

	// ErrEditorFailed means the editor could not be started or exited
	// with a non-zero status.
	ErrEditorFailed = errors.New("editor failed")
)

// Resolve picks the editor command to use. Candidates are tried in
// order: the preferred command (from a flag or the config file), the
// EDITOR environment variable, then vim and nvim on PATH. A candidate
// may carry arguments ("code -w"); its first word is looked up on
// PATH and the rest are returned as leading arguments. The first
// candidate that resolves wins.
func Resolve(preferred string) (string, []string, error) {
	for _, candidate := range []string{preferred, os.Getenv("EDITOR"), "vim", "nvim"} {
		fields := strings.Fields(candidate)
		if len(fields) == 0 {
			continue
		}
		if path, err := exec.LookPath(fields[0]); err == nil {
			return path, fields[1:], nil
		}
	}
	return "", nil, ErrNoEditor
}

// Invoker launches the external editor over a temporary file.
type Invoker struct {
	// Command is the resolved editor binary.
	Command string

	// Args are passed to the editor before the temp file path.
	Args []string
}

// Edit writes content to a fresh temporary file, runs the editor on it
// in the foreground, and returns the file's content after the editor
// exits. The ".txt" suffix is only a hint for editor highlighting.
//
// The temporary file is NOT removed here: its path is always returned,
// even on error, so the caller can either clean it up or point the
// user at it when the edit went wrong mid-way.
func (inv *Invoker) Edit(ctx context.Context, content []byte) (edited []byte, tmpPath string, err error) {
	tmp, err := os.CreateTemp("", "vimtag_*.txt")
	if err != nil {
		return nil, "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath = tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return nil, tmpPath, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, tmpPath, fmt.Errorf("close temp file: %w", err)
	}

	args := append(append([]string{}, inv.Args...), tmpPath)
	cmd := exec.CommandContext(ctx, inv.Command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, tmpPath, fmt.Errorf("%w: %s: %v", ErrEditorFailed, inv.Command, err)
	}

	// The file on disk after the editor exits is the sole hand-off
	// between the editor and the parser.
	edited, err = os.ReadFile(tmpPath)
	if err != nil {
		return nil, tmpPath, fmt.Errorf("read edited file: %w", err)
	}
	return edited, tmpPath, nil
}
