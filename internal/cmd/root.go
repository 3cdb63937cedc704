package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"workset/internal/adapters/prompt"
	"workset/internal/config"
	"workset/internal/domain"
	"workset/internal/logging"
	"workset/internal/ports"
	"workset/internal/theme"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	No          bool             `help:"Answer no to every confirmation" xor:"answer"`
	Yes         bool             `help:"Answer yes to every confirmation" short:"y" xor:"answer"`

	Cd        CdCmd        `cmd:"cd" help:"Change the working directory"`
	CloseDocs CloseCmd     `cmd:"" name:"close" help:"Close a document or all documents"`
	Focus     FocusCmd     `cmd:"focus" help:"Make an open document the active one"`
	Init      InitCmd      `cmd:"init" help:"Create the workset home and default settings"`
	Load      LoadCmd      `cmd:"load" help:"Restore a saved session (or 'list' to list them)"`
	New       NewCmd       `cmd:"new" help:"Start a new named session"`
	Open      OpenCmd      `cmd:"open" help:"Open documents"`
	Path      PathCmd      `cmd:"path" help:"Inspect or edit the search path"`
	Save      SaveCmd      `cmd:"save" help:"Save the current session"`
	Sessions  SessionsCmd  `cmd:"sessions" help:"Browse saved sessions (list, show)"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta)"`
	Shell     ShellCmd     `cmd:"shell" help:"Interactive session with startup restore and save on exit"`
	Status    StatusCmd    `cmd:"status" help:"Show the live environment"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
	stderr    io.Writer        `kong:"-"`
	stdout    io.Writer        `kong:"-"`
}

// SetOutput redirects what commands print; nil restores the process streams
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.stdout = stdout
	c.stderr = stderr
}

// Stdout is where commands write their results
func (c *CLI) Stdout() io.Writer {
	if c.stdout == nil {
		return os.Stdout
	}
	return c.stdout
}

// Stderr is where commands report warnings
func (c *CLI) Stderr() io.Writer {
	if c.stderr == nil {
		return os.Stderr
	}
	return c.stderr
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// LoadedSettings returns the loaded settings, never nil
func (c *CLI) LoadedSettings() *config.Settings {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set
	settings := c.LoadedSettings()

	if c.MaxLogFiles == config.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("WORKSET_MAX_LOG_FILES"); !hasEnv {
			if settings.MaxLogFiles != nil {
				c.MaxLogFiles = *settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("WORKSET_DEBUG"); !hasEnv {
			if settings.Debug != nil && *settings.Debug {
				c.Debug = true
			}
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes inherit debug settings
	// and use the SAME log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("WORKSET_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("WORKSET_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != config.DefaultMaxLogFiles {
		os.Setenv("WORKSET_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so GORM logs go to the right place
	container, err := NewContainer(settings, c.newPrompter())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// newPrompter picks the interactive prompter only when stdin is a terminal
func (c *CLI) newPrompter() ports.Prompter {
	switch {
	case c.Yes:
		return prompt.NewScriptedPrompter(domain.DecisionYes)
	case c.No:
		return prompt.NewScriptedPrompter(domain.DecisionNo)
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		return prompt.NewHuhPrompter()
	default:
		logging.Logger.Debug("stdin is not a terminal, confirmations will be cancelled")
		return prompt.NewScriptedPrompter(domain.DecisionCancel)
	}
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// handleCancelled turns a user cancellation into a clean exit
func (c *CLI) handleCancelled(err error) error {
	if errors.Is(err, domain.ErrCancelled) {
		logging.Logger.Info("Operation cancelled by user", "reason", err)
		fmt.Fprintln(c.Stdout(), "Cancelled")
		return nil
	}
	return err
}

// printWarnings reports non-fatal problems
func (c *CLI) printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintln(c.Stderr(), theme.WarningStyle.Render("Warning: "+w))
	}
}

// printError reports a failed command without ending the process
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, theme.ErrorStyle.Render("Error: "+err.Error()))
}
