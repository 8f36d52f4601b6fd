package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/vimtag/internal/config"
	"github.com/handiism/vimtag/internal/document"
	"github.com/handiism/vimtag/internal/edit"
	"github.com/handiism/vimtag/internal/editor"
	"github.com/handiism/vimtag/internal/scan"
)

// Exit codes. Scripts can tell "nothing to do" from "the document was
// broken" from "some writes failed".
const (
	exitOK          = 0
	exitFatal       = 1
	exitNoFiles     = 2
	exitEditor      = 3
	exitBadDocument = 4
	exitPartial     = 5
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		editorFlag   = flag.String("editor", "", "Editor command (overrides config and $EDITOR)")
		configFlag   = flag.String("config", "", "Path to config file")
		noRenameFlag = flag.Bool("no-rename", false, "Never rename files, only write tags")
		dryRunFlag   = flag.Bool("dry-run", false, "Show what would change without writing anything")
		verboseFlag  = flag.Bool("verbose", false, "Show per-file detail output")
	)

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("vimtag - batch-edit audio file tags in your text editor")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  vimtag [options] <directory>")
		fmt.Println()
		flag.PrintDefaults()
		return exitFatal
	}
	dir := flag.Arg(0)

	configPath := *configFlag
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error loading config: %v", err)))
		return exitFatal
	}

	// Flags override the config file.
	if *editorFlag != "" {
		settings.Editor = *editorFlag
	}
	if *noRenameFlag {
		settings.RenameFiles = false
	}
	if *verboseFlag {
		settings.Verbose = true
	}

	manager := edit.NewManager(settings, func(event edit.ProgressEvent) {
		if event.Level == edit.LevelVerbose && !settings.Verbose {
			return
		}
		printEvent(event)
	})
	manager.DryRun = *dryRunFlag

	// No signal handling on purpose: while the editor owns the
	// terminal, Ctrl-C belongs to the editor, not to us.
	summary, err := manager.Run(context.Background(), dir)

	printSummary(summary)

	if err == nil {
		return exitOK
	}

	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
	switch {
	case errors.Is(err, edit.ErrNoFiles):
		return exitNoFiles
	case errors.Is(err, editor.ErrNoEditor), errors.Is(err, editor.ErrEditorFailed):
		return exitEditor
	case errors.Is(err, document.ErrMissingBlock), errors.Is(err, document.ErrDuplicateBlock):
		return exitBadDocument
	case errors.Is(err, edit.ErrPartialFailure):
		return exitPartial
	case errors.Is(err, scan.ErrNotFound):
		return exitFatal
	default:
		return exitFatal
	}
}

func printEvent(event edit.ProgressEvent) {
	switch event.Level {
	case edit.LevelError:
		fmt.Println(errorStyle.Render(event.Message))
	case edit.LevelWarning:
		fmt.Println(warningStyle.Render(event.Message))
	case edit.LevelSuccess:
		fmt.Println(successStyle.Render(event.Message))
	case edit.LevelVerbose:
		fmt.Println(dimStyle.Render(event.Message))
	default:
		fmt.Println(infoStyle.Render(event.Message))
	}
}

func printSummary(summary *edit.Summary) {
	if summary == nil || summary.Found == 0 {
		return
	}

	fmt.Println()
	fmt.Println(infoStyle.Render(fmt.Sprintf(
		"%d file(s): %d updated, %d renamed, %d unchanged",
		summary.Found, summary.Updated, summary.Renamed, summary.Unchanged)))
	if summary.Skipped > 0 {
		fmt.Println(warningStyle.Render(fmt.Sprintf("%d file(s) skipped as unreadable", summary.Skipped)))
	}
	if summary.Conflicts > 0 {
		fmt.Println(warningStyle.Render(fmt.Sprintf("%d rename(s) skipped due to existing files", summary.Conflicts)))
	}
	if summary.Failed > 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("%d file(s) failed:", summary.Failed)))
		for _, failure := range summary.Failures {
			fmt.Println(errorStyle.Render(fmt.Sprintf("  %s: %s", failure.Path, failure.Reason)))
		}
	}
}
