package ports

import (
	"context"

	"workset/internal/domain"
)

// Prompter asks the user questions. Every call blocks until the user answers or cancels.
type Prompter interface {
	// Choose returns false when nothing was chosen
	Choose(ctx context.Context, title string, options []string) (string, bool, error)
	Confirm(ctx context.Context, title, question string) (domain.Decision, error)
	// Prompt returns false on cancel or empty input
	Prompt(ctx context.Context, text, title, defaultValue string) (string, bool, error)
}
