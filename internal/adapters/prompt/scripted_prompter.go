package prompt

import (
	"context"

	"workset/internal/domain"
	"workset/internal/logging"
	"workset/internal/ports"
)

// ScriptedPrompter answers every question the same way, for
// non-interactive runs (--yes, --no, or no terminal)
type ScriptedPrompter struct {
	answer domain.Decision
}

// Verify interface compliance at compile time
var _ ports.Prompter = (*ScriptedPrompter)(nil)

// NewScriptedPrompter creates a prompter that confirms with answer
func NewScriptedPrompter(answer domain.Decision) *ScriptedPrompter {
	return &ScriptedPrompter{answer: answer}
}

// Prompt returns the default value; an empty default counts as cancel
func (p *ScriptedPrompter) Prompt(ctx context.Context, text, title, defaultValue string) (string, bool, error) {
	logging.Logger.Debug("Answering prompt non-interactively", "title", title, "default", defaultValue)
	if defaultValue == "" {
		return "", false, nil
	}
	return defaultValue, true, nil
}

func (p *ScriptedPrompter) Confirm(ctx context.Context, title, question string) (domain.Decision, error) {
	logging.Logger.Debug("Answering confirmation non-interactively", "question", question, "answer", p.answer)
	return p.answer, nil
}

// Choose never picks for the user
func (p *ScriptedPrompter) Choose(ctx context.Context, title string, options []string) (string, bool, error) {
	logging.Logger.Debug("Declining choice non-interactively", "title", title, "options", len(options))
	return "", false, nil
}
