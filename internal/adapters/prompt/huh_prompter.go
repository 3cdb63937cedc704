package prompt

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"workset/internal/domain"
	"workset/internal/logging"
	"workset/internal/ports"
)

// HuhPrompter implements ports.Prompter with huh forms on the terminal
type HuhPrompter struct {
	input  io.Reader
	output io.Writer
}

// Verify interface compliance at compile time
var _ ports.Prompter = (*HuhPrompter)(nil)

// NewHuhPrompter creates a prompter reading keys from stdin and drawing on stderr
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{input: os.Stdin, output: os.Stderr}
}

// run blocks until the form is submitted or cancelled
func (p *HuhPrompter) run(ctx context.Context, form *huh.Form) (bool, error) {
	model := newFormModel(form.WithShowHelp(true))

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
	)
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return !model.Cancelled, nil
}

// Prompt asks for a line of text. Empty input counts as cancel.
func (p *HuhPrompter) Prompt(ctx context.Context, text, title, defaultValue string) (string, bool, error) {
	value := defaultValue
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(text).
				Value(&value).
				Placeholder(defaultValue),
		),
	)

	submitted, err := p.run(ctx, form)
	if err != nil {
		return "", false, err
	}

	value = strings.TrimSpace(value)
	if !submitted || value == "" {
		logging.Logger.Debug("Prompt cancelled", "title", title)
		return "", false, nil
	}
	return value, true, nil
}

// Confirm asks a yes/no/cancel question. Escape answers cancel.
func (p *HuhPrompter) Confirm(ctx context.Context, title, question string) (domain.Decision, error) {
	decision := domain.DecisionYes
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Decision]().
				Title(title).
				Description(question).
				Options(
					huh.NewOption("Yes", domain.DecisionYes),
					huh.NewOption("No", domain.DecisionNo),
					huh.NewOption("Cancel", domain.DecisionCancel),
				).
				Value(&decision),
		),
	)

	submitted, err := p.run(ctx, form)
	if err != nil {
		return domain.DecisionCancel, err
	}
	if !submitted {
		return domain.DecisionCancel, nil
	}
	return decision, nil
}

// Choose offers options in a list
func (p *HuhPrompter) Choose(ctx context.Context, title string, options []string) (string, bool, error) {
	if len(options) == 0 {
		return "", false, nil
	}

	choice := options[0]
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(huh.NewOptions(options...)...).
				Value(&choice),
		),
	)

	submitted, err := p.run(ctx, form)
	if err != nil {
		return "", false, err
	}
	if !submitted {
		return "", false, nil
	}
	return choice, true, nil
}
