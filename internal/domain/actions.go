package domain

// Action represents a user-invocable action in the system.
// The interactive shell lists these in its help output.
type Action struct {
	Description     string
	Name            string
	RequiresSession bool
	Usage           string
}

// Actions is the canonical registry of all available actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: "cd", Usage: "cd <dir>", Description: "Change the working directory"},
	{Name: "close", Usage: "close <file> | --all", Description: "Close a document or all documents"},
	{Name: "exit", Usage: "exit", Description: "Save (with confirmation) and leave the shell"},
	{Name: "focus", Usage: "focus <file>", Description: "Make an open document the active one"},
	{Name: "help", Usage: "help", Description: "Show available commands"},
	{Name: "load", Usage: "load [name|list]", Description: "Restore a saved session"},
	{Name: "new", Usage: "new [name]", Description: "Start a new named session"},
	{Name: "open", Usage: "open <file>...", Description: "Open documents"},
	{Name: "path", Usage: "path show|add|rm [dir]", Description: "Inspect or edit the search path"},
	{Name: "save", Usage: "save [--force]", Description: "Save the current session", RequiresSession: true},
	{Name: "sessions", Usage: "sessions list|show <name>", Description: "Browse saved sessions"},
	{Name: "status", Usage: "status", Description: "Show the live environment"},
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name string) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}

// GetActionsForContext returns actions filtered by context.
// If hasSession is false, actions that require a session are excluded.
func GetActionsForContext(hasSession bool) []Action {
	if hasSession {
		return Actions
	}

	var filtered []Action
	for _, a := range Actions {
		if !a.RequiresSession {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
