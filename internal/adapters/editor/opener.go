package editor

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/anmitsu/go-shlex"

	"workset/internal/logging"
	"workset/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct{}

// Verify interface compliance at compile time
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the specified document in an editor without waiting for it
// Priority: cliEditor → $WORKSET_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) Open(path string, cliEditor string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	editor, args, err := findEditor(path, cliEditor)
	if err != nil {
		return err
	}
	if editor == "" {
		return fmt.Errorf("no suitable editor found. Set the editor setting, $WORKSET_EDITOR, $VISUAL, or $EDITOR")
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)

	cmd := exec.Command(editor, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start editor: %w", err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Editor exited with error", "error", err, "editor", editor)
		}
	}()

	return nil
}

func findEditor(path string, cliEditor string) (string, []string, error) {
	// 1. Setting or flag takes precedence
	if cliEditor != "" {
		return splitEditor(cliEditor, path)
	}

	// 2. Check WORKSET_EDITOR
	if editor := os.Getenv("WORKSET_EDITOR"); editor != "" {
		return splitEditor(editor, path)
	}

	// 3. Check VISUAL
	if editor := os.Getenv("VISUAL"); editor != "" {
		return splitEditor(editor, path)
	}

	// 4. Check EDITOR
	if editor := os.Getenv("EDITOR"); editor != "" {
		return splitEditor(editor, path)
	}

	// 5. Platform-specific defaults
	editor, args := findPlatformEditor(path)
	return editor, args, nil
}

// splitEditor allows editor values with arguments, e.g. "code --reuse-window"
func splitEditor(value string, path string) (string, []string, error) {
	parts, err := shlex.Split(value, true)
	if err != nil {
		return "", nil, fmt.Errorf("invalid editor command %q: %w", value, err)
	}
	if len(parts) == 0 {
		return "", nil, nil
	}
	return parts[0], append(parts[1:], path), nil
}
