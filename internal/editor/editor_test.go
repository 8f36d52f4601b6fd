package editor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"testing"
)

func TestResolve_Preferred(t *testing.T) {
	// "sh" exists everywhere the tests run.
	path, args, err := Resolve("sh")
	if err != nil {
		t.Fatalf("Resolve(sh) error: %v", err)
	}
	if path == "" {
		t.Error("Resolve(sh) returned empty path")
	}
	if len(args) != 0 {
		t.Errorf("Resolve(sh) args = %v, want none", args)
	}
}

func TestResolve_CommandWithArgs(t *testing.T) {
	path, args, err := Resolve("sh -c true")
	if err != nil {
		t.Fatalf("Resolve(sh -c true) error: %v", err)
	}
	want, _ := exec.LookPath("sh")
	if path != want {
		t.Errorf("Resolve() path = %q, want %q", path, want)
	}
	if len(args) != 2 || args[0] != "-c" || args[1] != "true" {
		t.Errorf("Resolve() args = %v, want [-c true]", args)
	}
}

func TestResolve_EnvFallback(t *testing.T) {
	t.Setenv("EDITOR", "sh")
	path, _, err := Resolve("definitely-not-an-editor-binary")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	want, _ := exec.LookPath("sh")
	if path != want {
		t.Errorf("Resolve() = %q, want %q", path, want)
	}
}

func TestResolve_EnvWithArgs(t *testing.T) {
	// The common convention EDITOR="editor --flag" must not fall
	// through to vim just because the whole string is not a binary.
	t.Setenv("EDITOR", "sh -c true")
	path, args, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	want, _ := exec.LookPath("sh")
	if path != want {
		t.Errorf("Resolve() path = %q, want %q", path, want)
	}
	if len(args) != 2 {
		t.Errorf("Resolve() args = %v, want [-c true]", args)
	}
}

func TestResolve_NoneFound(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("PATH", t.TempDir())
	_, _, err := Resolve("")
	if !errors.Is(err, ErrNoEditor) {
		t.Errorf("Resolve() error = %v, want ErrNoEditor", err)
	}
}

func TestInvoker_EditNoOp(t *testing.T) {
	// "true" exits 0 without touching the file, modelling a user who
	// saves nothing.
	truePath, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true not on PATH")
	}

	inv := &Invoker{Command: truePath}
	content := []byte("# File: /music/a.mp3\ntitle: x\n")
	edited, tmpPath, err := inv.Edit(context.Background(), content)
	if err != nil {
		t.Fatalf("Edit() error: %v", err)
	}
	defer os.Remove(tmpPath)

	if string(edited) != string(content) {
		t.Errorf("Edit() content = %q, want unchanged %q", edited, content)
	}
	if tmpPath == "" {
		t.Error("Edit() returned empty temp path")
	}
}

func TestInvoker_EditWithArgs(t *testing.T) {
	shPath, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not on PATH")
	}

	// The temp file path lands after the args, as $0 of the script,
	// which overwrites the document like a real editor saving edits.
	inv := &Invoker{
		Command: shPath,
		Args:    []string{"-c", `printf 'title: edited\n' > "$0"`},
	}
	edited, tmpPath, err := inv.Edit(context.Background(), []byte("title: original\n"))
	if err != nil {
		t.Fatalf("Edit() error: %v", err)
	}
	defer os.Remove(tmpPath)

	if string(edited) != "title: edited\n" {
		t.Errorf("Edit() content = %q, want the overwritten document", edited)
	}
}

func TestInvoker_EditFailure(t *testing.T) {
	falsePath, err := exec.LookPath("false")
	if err != nil {
		t.Skip("false not on PATH")
	}

	inv := &Invoker{Command: falsePath}
	_, tmpPath, err := inv.Edit(context.Background(), []byte("doc"))
	if !errors.Is(err, ErrEditorFailed) {
		t.Fatalf("Edit() error = %v, want ErrEditorFailed", err)
	}

	// The temp file must survive a failed edit so the user's work is
	// not lost.
	if tmpPath == "" {
		t.Fatal("Edit() returned empty temp path on failure")
	}
	if _, statErr := os.Stat(tmpPath); statErr != nil {
		t.Errorf("temp file should still exist after editor failure: %v", statErr)
	}
	os.Remove(tmpPath)
}
