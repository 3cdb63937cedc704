package cmd

import (
	"errors"
	"fmt"
	"os"

	"workset/internal/config"
	"workset/internal/logging"
)

// InitCmd performs the one-time install; running it again changes nothing
type InitCmd struct{}

// Run executes the init command
func (i *InitCmd) Run(cli *CLI) error {
	out := cli.Stdout()
	home := config.GetWorksetHome()

	for _, dir := range []string{home, config.GetSessionsPath()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	fmt.Fprintf(out, "✓ Home directory: %s\n", home)

	settingsPath := config.GetSettingsPath()
	if _, err := os.Stat(settingsPath); err == nil {
		fmt.Fprintf(out, "✓ Settings already present: %s\n", settingsPath)
	} else if errors.Is(err, os.ErrNotExist) {
		if err := config.SaveSettings(config.DefaultSettings()); err != nil {
			return err
		}
		logging.Logger.Info("Default settings written", "path", settingsPath)
		fmt.Fprintf(out, "✓ Settings written: %s\n", settingsPath)
	} else {
		return fmt.Errorf("failed to check settings file: %w", err)
	}

	if err := cli.Container.Environment.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Workspace: %s\n", config.GetWorkspacePath())

	fmt.Fprintln(out, "\n✓ Setup complete!")
	fmt.Fprintln(out, "Start a session with: workset new <name>")
	return nil
}
