package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"workset/internal/domain"
	"workset/internal/services"
	"workset/internal/theme"
)

// StatusCmd displays the live environment
type StatusCmd struct{}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	status, err := cli.Container.WorkspaceService.Status(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprint(cli.Stdout(), renderStatus(status))
	return nil
}

func renderStatus(status *services.Status) string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render(domain.Label(status.CurrentSession)))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(theme.LabelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	session := theme.MutedStyle.Render("(none)")
	if status.CurrentSession != "" {
		session = theme.SessionStyle.Render(status.CurrentSession)
	}
	row("Session", session)

	last := theme.MutedStyle.Render("(none)")
	if status.LastUsed != "" {
		last = theme.NormalStyle.Render(status.LastUsed)
	}
	row("Last saved", last)
	row("Working directory", theme.NormalStyle.Render(status.WorkingDirectory))

	b.WriteString("\n")
	row(fmt.Sprintf("Documents (%d)", len(status.Documents)), "")
	for _, path := range status.Documents {
		b.WriteString("  ")
		switch {
		case path == status.ActiveDocument:
			b.WriteString(theme.ActiveDocumentStyle.Render("* " + path))
		case !fileExists(path):
			b.WriteString(theme.MissingDocumentStyle.Render("  " + path))
		default:
			b.WriteString(theme.NormalStyle.Render("  " + path))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	row(fmt.Sprintf("Search path (%d)", len(status.SearchPath)), "")
	for _, entry := range status.SearchPath {
		b.WriteString("    ")
		b.WriteString(theme.MutedStyle.Render(entry))
		b.WriteString("\n")
	}

	return b.String()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
