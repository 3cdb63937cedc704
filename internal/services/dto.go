package services

// SaveOutcome reports whether Save wrote a record
type SaveOutcome int

const (
	SaveSkipped SaveOutcome = iota // No current session, or the user said no
	SaveWritten
)

// RestoreMode controls what Startup does with the last-used session
type RestoreMode string

const (
	RestoreAuto   RestoreMode = "auto"
	RestoreOff    RestoreMode = "off"
	RestorePrompt RestoreMode = "prompt"
)

// LoadResult describes a completed restore
type LoadResult struct {
	Name     string
	Opened   int
	Warnings []string // Non-fatal restore problems (missing documents, search path entries)
}

// Status is a snapshot of the live environment for display
type Status struct {
	ActiveDocument   string
	CurrentSession   string
	Documents        []string
	LastUsed         string
	SearchPath       []string
	WorkingDirectory string
}
