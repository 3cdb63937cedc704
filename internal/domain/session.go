package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
)

// Reserved names cannot be used as session names
const (
	LastSessionName = "last_session" // Stem of the last-used pointer file
	ListKeyword     = "list"         // load list prints the stored sessions
)

// LabelPrefix is shown in front of the session name in the shell prompt and status bar
const LabelPrefix = "workset"

// Record is a persisted snapshot of the live editor environment (domain entity)
type Record struct {
	ActiveFile       string
	Name             string
	OpenFiles        []string
	SavedAt          time.Time
	SearchPath       string
	WorkingDirectory string
}

// Validate checks the record invariants
func (r Record) Validate() error {
	if err := ValidateName(r.Name); err != nil {
		return err
	}
	if r.ActiveFile != "" && !slices.Contains(r.OpenFiles, r.ActiveFile) {
		return fmt.Errorf("active file %s is not among the open files", r.ActiveFile)
	}
	return nil
}

// SameSnapshot reports whether two records capture the same environment.
// SavedAt is ignored.
func (r Record) SameSnapshot(other Record) bool {
	return r.Name == other.Name &&
		r.ActiveFile == other.ActiveFile &&
		r.WorkingDirectory == other.WorkingDirectory &&
		r.SearchPath == other.SearchPath &&
		slices.Equal(r.OpenFiles, other.OpenFiles)
}

// Decision is the answer to a yes/no/cancel question
type Decision string

const (
	DecisionCancel Decision = "cancel"
	DecisionNo     Decision = "no"
	DecisionYes    Decision = "yes"
)

// SanitizeName converts user input to a name usable as a file stem.
// - Letters, numbers, underscores, hyphens, and periods are kept
// - Spaces, parentheses, and slashes become underscores (consecutive ones collapsed)
// - Everything else is removed
// - Leading periods are trimmed so the record file is never hidden
func SanitizeName(input string) string {
	var result strings.Builder
	lastWasUnderscore := false

	for _, r := range strings.TrimSpace(input) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '.' {
			result.WriteRune(r)
			lastWasUnderscore = false
		} else if r == '_' {
			result.WriteRune('_')
			lastWasUnderscore = true
		} else if unicode.IsSpace(r) || r == '(' || r == ')' || r == '/' || r == '\\' {
			if !lastWasUnderscore && result.Len() > 0 {
				result.WriteRune('_')
				lastWasUnderscore = true
			}
		}
	}

	str := strings.TrimRight(result.String(), "_")
	return strings.TrimLeft(str, ".")
}

// ValidateName checks that name is a usable, non-reserved session name
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if SanitizeName(name) != name {
		return fmt.Errorf("%w: %q (try %q)", ErrInvalidName, name, SanitizeName(name))
	}
	if IsReservedName(name) {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}
	return nil
}

// IsReservedName reports whether name collides with a keyword or the pointer file
func IsReservedName(name string) bool {
	lower := strings.ToLower(name)
	return lower == LastSessionName || lower == ListKeyword
}

// Label renders the session indicator shown to the user
func Label(name string) string {
	if name == "" {
		return LabelPrefix
	}
	return LabelPrefix + " - " + name
}
