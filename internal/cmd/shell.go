package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/anmitsu/go-shlex"

	"workset/internal/domain"
	"workset/internal/logging"
	"workset/internal/services"
	"workset/internal/theme"
	"workset/internal/version"
)

// ShellCmd runs an interactive session: the startup hook restores the
// last-used session, and leaving the shell runs the shutdown hook
type ShellCmd struct{}

// shellCLI is the command set available at the shell prompt
type shellCLI struct {
	Cd        CdCmd       `cmd:"cd" help:"Change the working directory"`
	CloseDocs CloseCmd    `cmd:"" name:"close" help:"Close a document or all documents"`
	Focus     FocusCmd    `cmd:"focus" help:"Make an open document the active one"`
	Load      LoadCmd     `cmd:"load" help:"Restore a saved session"`
	New       NewCmd      `cmd:"new" help:"Start a new named session"`
	Open      OpenCmd     `cmd:"open" help:"Open documents"`
	Path      PathCmd     `cmd:"path" help:"Inspect or edit the search path"`
	Save      SaveCmd     `cmd:"save" help:"Save the current session"`
	Sessions  SessionsCmd `cmd:"sessions" help:"Browse saved sessions"`
	Status    StatusCmd   `cmd:"status" help:"Show the live environment"`
}

// Run executes the shell command
func (s *ShellCmd) Run(cli *CLI) error {
	ctx := context.Background()
	logging.Logger.Info("Starting interactive shell")

	out := cli.Stdout()
	fmt.Fprintf(out, "%s %s\n", theme.AppNameStyle.Render("workset"), theme.VersionStyle.Render(version.Version))
	fmt.Fprintln(out, theme.TaglineStyle.Render(version.Tagline))
	fmt.Fprintln(out, "Type 'help' for commands, 'exit' to leave.")
	fmt.Fprintln(out)

	if wd := cli.Container.Environment.WorkingDirectory(); wd != "" {
		if err := os.Chdir(wd); err != nil {
			logging.Logger.Warn("Could not enter workspace directory", "dir", wd, "error", err)
		}
	}

	return runShell(ctx, cli, os.Stdin, cli.Stdout(), cli.Stderr())
}

func newShellParser(stdout, stderr io.Writer) (*kong.Kong, error) {
	return kong.New(&shellCLI{},
		kong.Name("workset"),
		kong.NoDefaultHelp(),
		kong.Exit(func(int) {}),
		kong.Writers(stdout, stderr),
	)
}

// runShell reads commands until exit or end of input.
// Dispatched commands write to stdout and stderr as well.
func runShell(ctx context.Context, cli *CLI, in io.Reader, stdout, stderr io.Writer) error {
	cli.SetOutput(stdout, stderr)
	defer cli.SetOutput(nil, nil)

	settings := cli.LoadedSettings()
	env := cli.Container.Environment

	parser, err := newShellParser(stdout, stderr)
	if err != nil {
		return fmt.Errorf("failed to build shell commands: %w", err)
	}

	mode := services.RestoreMode(settings.RestoreOrDefault())
	result, err := cli.Container.SessionService.Startup(ctx, mode)
	if err != nil {
		printError(stderr, err)
	} else if result != nil {
		cli.printWarnings(result.Warnings)
		fmt.Fprintf(stdout, "✓ Session '%s' restored (%d documents)\n", result.Name, result.Opened)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(stdout, theme.PromptStyle.Render(domain.Label(env.CurrentSession())+"> "))

		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			_, err := shutdown(ctx, cli, stdout, false)
			return err
		}

		args, err := shlex.Split(scanner.Text(), true)
		if err != nil {
			printError(stderr, err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "exit", "quit":
			done, err := shutdown(ctx, cli, stdout, true)
			if done {
				return err
			}
		case "help":
			printShellHelp(stdout, env.CurrentSession() != "")
		default:
			if domain.GetActionByName(args[0]) == nil {
				printError(stderr, fmt.Errorf("unknown command %q, type 'help' for commands", args[0]))
				continue
			}
			dispatch(cli, parser, args, stderr)
		}
	}
}

func dispatch(cli *CLI, parser *kong.Kong, args []string, stderr io.Writer) {
	logging.Logger.Debug("Shell command", "args", args)

	kctx, err := parser.Parse(args)
	if err != nil {
		printError(stderr, err)
		return
	}
	if err := kctx.Run(cli); err != nil {
		logging.Logger.Error("Shell command failed", "args", args, "error", err)
		printError(stderr, err)
	}
}

// shutdown runs the save-on-exit hook. A cancelled save keeps the shell
// open when the user typed exit; at end of input it leaves regardless.
func shutdown(ctx context.Context, cli *CLI, stdout io.Writer, canAbort bool) (bool, error) {
	if !cli.LoadedSettings().SaveOnExitOrDefault() {
		return true, nil
	}

	name := cli.Container.Environment.CurrentSession()
	outcome, err := cli.Container.SessionService.Shutdown(ctx)
	if errors.Is(err, domain.ErrCancelled) {
		if canAbort {
			fmt.Fprintln(stdout, "Exit cancelled")
			return false, nil
		}
		return true, nil
	}
	if err != nil {
		return true, err
	}

	if outcome == services.SaveWritten {
		fmt.Fprintf(stdout, "✓ Session '%s' saved\n", name)
	}
	logging.Logger.Info("Shell exited", "session", name)
	return true, nil
}

func printShellHelp(w io.Writer, hasSession bool) {
	fmt.Fprintln(w, theme.HelpGroupStyle.Render("Commands"))
	for _, action := range domain.GetActionsForContext(hasSession) {
		fmt.Fprintf(w, "  %s%s\n", theme.HelpKeyStyle.Render(action.Usage), theme.HelpDescStyle.Render(action.Description))
	}
}
