package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - session names
)

// Document colors
const (
	ColorActive  Color = "2" // Green - active document
	ColorMissing Color = "1" // Red - document gone from disk
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "214" // Orange
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorPrompt    Color = "226" // Yellow - shell prompt
)
