package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"workset/internal/domain"
	"workset/internal/logging"
)

// SessionsListCmd lists all saved sessions
type SessionsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// sessionSummary is one row of the list output
type sessionSummary struct {
	Documents        int    `json:"documents"`
	LastUsed         bool   `json:"last_used"`
	Name             string `json:"name"`
	SavedAt          string `json:"saved_at"`
	WorkingDirectory string `json:"working_directory"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	service := cli.Container.SessionService

	names, err := service.List(ctx)
	if err != nil {
		return err
	}
	last, err := service.LastUsed(ctx)
	if err != nil {
		return err
	}

	summaries := make([]sessionSummary, 0, len(names))
	for _, name := range names {
		record, err := service.Show(ctx, name)
		if err != nil {
			logging.Logger.Warn("Skipping unreadable session", "session", name, "error", err)
			continue
		}
		summaries = append(summaries, summarize(record, last))
	}

	if s.Format == "json" {
		return s.printJSON(cli.Stdout(), summaries)
	}
	return s.printTable(cli.Stdout(), summaries)
}

func summarize(record *domain.Record, last string) sessionSummary {
	savedAt := ""
	if !record.SavedAt.IsZero() {
		savedAt = record.SavedAt.Local().Format("2006-01-02 15:04:05")
	}
	return sessionSummary{
		Documents:        len(record.OpenFiles),
		LastUsed:         record.Name == last,
		Name:             record.Name,
		SavedAt:          savedAt,
		WorkingDirectory: record.WorkingDirectory,
	}
}

func (s *SessionsListCmd) printJSON(out io.Writer, summaries []sessionSummary) error {
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func (s *SessionsListCmd) printTable(out io.Writer, summaries []sessionSummary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDOCUMENTS\tWORKING DIRECTORY\tSAVED AT\tLAST")
	for _, sum := range summaries {
		last := ""
		if sum.LastUsed {
			last = "✓"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			sum.Name,
			sum.Documents,
			sum.WorkingDirectory,
			sum.SavedAt,
			last)
	}
	w.Flush()

	fmt.Fprintf(out, "\nTotal: %d sessions\n", len(summaries))
	return nil
}
