package cmd

import (
	"fmt"

	"workset/internal/domain"
)

// OpenCmd opens documents in the live environment
type OpenCmd struct {
	Files []string `arg:"" help:"Files to open"`
}

// Run executes the open command
func (o *OpenCmd) Run(cli *CLI) error {
	if err := cli.Container.WorkspaceService.Open(o.Files...); err != nil {
		return err
	}
	fmt.Fprintf(cli.Stdout(), "✓ Opened %d documents\n", len(o.Files))
	return nil
}

// CloseCmd closes documents in the live environment
type CloseCmd struct {
	All  bool   `help:"Close all documents" short:"a"`
	File string `arg:"" optional:"" help:"Document to close" type:"path"`
}

// Run executes the close command
func (c *CloseCmd) Run(cli *CLI) error {
	if c.All && c.File != "" {
		return fmt.Errorf("--all cannot be combined with a document")
	}
	if c.All {
		return cli.Container.WorkspaceService.CloseAll()
	}
	if c.File == "" {
		return fmt.Errorf("specify a document or --all")
	}
	return cli.Container.WorkspaceService.Close(c.File)
}

// FocusCmd makes an open document the active one
type FocusCmd struct {
	File string `arg:"" help:"Open document to focus" type:"path"`
}

// Run executes the focus command
func (f *FocusCmd) Run(cli *CLI) error {
	return cli.Container.WorkspaceService.Focus(f.File)
}

// CdCmd changes the working directory of the live environment
type CdCmd struct {
	Dir string `arg:"" help:"Directory to change to" type:"path"`
}

// Run executes the cd command
func (c *CdCmd) Run(cli *CLI) error {
	if err := cli.Container.WorkspaceService.Cd(c.Dir); err != nil {
		return err
	}
	fmt.Fprintln(cli.Stdout(), cli.Container.Environment.WorkingDirectory())
	return nil
}

// PathCmd inspects or edits the search path
type PathCmd struct {
	Add  PathAddCmd  `cmd:"add" help:"Append a directory to the search path"`
	Rm   PathRmCmd   `cmd:"rm" aliases:"remove" help:"Remove a directory from the search path"`
	Show PathShowCmd `cmd:"show" help:"Print the search path, one entry per line" default:"1"`
}

// PathShowCmd prints the search path
type PathShowCmd struct{}

// Run executes the path show command
func (p *PathShowCmd) Run(cli *CLI) error {
	for _, entry := range domain.SplitSearchPath(cli.Container.Environment.SearchPath()) {
		fmt.Fprintln(cli.Stdout(), entry)
	}
	return nil
}

// PathAddCmd appends a directory to the search path
type PathAddCmd struct {
	Dir string `arg:"" help:"Directory to add" type:"path"`
}

// Run executes the path add command
func (p *PathAddCmd) Run(cli *CLI) error {
	return cli.Container.WorkspaceService.PathAdd(p.Dir)
}

// PathRmCmd removes a directory from the search path
type PathRmCmd struct {
	Dir string `arg:"" help:"Directory to remove"`
}

// Run executes the path rm command
func (p *PathRmCmd) Run(cli *CLI) error {
	return cli.Container.WorkspaceService.PathRemove(p.Dir)
}
