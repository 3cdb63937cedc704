package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"workset/internal/domain"
)

// SessionsShowCmd shows a saved session
type SessionsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Name   string `arg:"" help:"Name of the session to show"`
}

// Run executes the show command
func (s *SessionsShowCmd) Run(cli *CLI) error {
	record, err := cli.Container.SessionService.Show(context.Background(), s.Name)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	if s.Format == "json" {
		return s.printJSON(cli.Stdout(), record)
	}
	return s.printTable(cli.Stdout(), record)
}

func (s *SessionsShowCmd) printJSON(out io.Writer, record *domain.Record) error {
	output := map[string]any{
		"active_file":       record.ActiveFile,
		"name":              record.Name,
		"open_files":        record.OpenFiles,
		"saved_at":          record.SavedAt,
		"search_path":       domain.SplitSearchPath(record.SearchPath),
		"working_directory": record.WorkingDirectory,
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func (s *SessionsShowCmd) printTable(out io.Writer, record *domain.Record) error {
	fmt.Fprintf(out, "Session: %s\n", record.Name)
	fmt.Fprintf(out, "Saved At: %s\n", record.SavedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Working Directory: %s\n", record.WorkingDirectory)

	fmt.Fprintf(out, "\nDocuments (%d):\n", len(record.OpenFiles))
	for _, path := range record.OpenFiles {
		marker := " "
		if path == record.ActiveFile {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %s\n", marker, path)
	}

	entries := domain.SplitSearchPath(record.SearchPath)
	fmt.Fprintf(out, "\nSearch Path (%d):\n", len(entries))
	for _, entry := range entries {
		fmt.Fprintf(out, "    %s\n", entry)
	}

	return nil
}
