package cmd

// SessionsCmd browses saved sessions
type SessionsCmd struct {
	List SessionsListCmd `cmd:"list" help:"List all saved sessions" default:"1"`
	Show SessionsShowCmd `cmd:"show" help:"Show a saved session"`
}
