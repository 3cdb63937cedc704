package cmd

import (
	"context"
	"errors"
	"fmt"

	"workset/internal/domain"
	"workset/internal/logging"
	"workset/internal/services"
)

// NewCmd starts a new named session
type NewCmd struct {
	Name string `arg:"" optional:"" help:"Session name (asked for when omitted)"`
}

// Run executes the new command
func (n *NewCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing new command", "name", n.Name)

	name, err := cli.Container.SessionService.New(context.Background(), n.Name)
	if errors.Is(err, domain.ErrSessionExists) {
		fmt.Fprintf(cli.Stdout(), "Session '%s' exists and was not overwritten\n", domain.SanitizeName(n.Name))
		return nil
	}
	if err != nil {
		return cli.handleCancelled(err)
	}

	fmt.Fprintf(cli.Stdout(), "✓ Session '%s' created\n", name)
	return nil
}

// SaveCmd saves the current session
type SaveCmd struct {
	Force bool `help:"Save without confirmation" short:"f"`
}

// Run executes the save command
func (s *SaveCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing save command", "force", s.Force)
	out := cli.Stdout()

	name := cli.Container.Environment.CurrentSession()
	if name == "" {
		fmt.Fprintln(out, "No current session. Use 'workset new <name>' to start one.")
		return nil
	}

	outcome, err := cli.Container.SessionService.Save(context.Background(), s.Force)
	if err != nil {
		return cli.handleCancelled(err)
	}

	if outcome == services.SaveWritten {
		fmt.Fprintf(out, "✓ Session '%s' saved\n", name)
	} else {
		fmt.Fprintf(out, "Session '%s' not saved\n", name)
	}
	return nil
}

// LoadCmd restores a saved session
type LoadCmd struct {
	Name string `arg:"" optional:"" help:"Session to load, or 'list' to list sessions (chosen interactively when omitted)"`
}

// Run executes the load command
func (l *LoadCmd) Run(cli *CLI) error {
	ctx := context.Background()
	logging.Logger.Info("Executing load command", "name", l.Name)

	if l.Name == domain.ListKeyword {
		names, err := cli.Container.SessionService.List(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cli.Stdout(), name)
		}
		return nil
	}

	result, err := cli.Container.SessionService.Load(ctx, l.Name)
	if err != nil {
		return cli.handleCancelled(err)
	}

	cli.printWarnings(result.Warnings)
	fmt.Fprintf(cli.Stdout(), "✓ Session '%s' loaded (%d documents)\n", result.Name, result.Opened)
	return nil
}
