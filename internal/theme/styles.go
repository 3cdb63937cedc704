package theme

import "github.com/charmbracelet/lipgloss"

// Status view styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(20)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SessionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Document styles
var (
	ActiveDocumentStyle = lipgloss.NewStyle().
				Foreground(ColorActive).
				Bold(true)

	MissingDocumentStyle = lipgloss.NewStyle().
				Foreground(ColorMissing).
				Strikethrough(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Shell styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrompt).
			Bold(true)
)

// Message styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
