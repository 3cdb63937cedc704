package ports

// EditorOpener opens documents in an external editor
type EditorOpener interface {
	// Open opens the specified path in an editor
	// cliEditor is the editor specified via CLI flag or settings (takes precedence)
	Open(path string, cliEditor string) error
}
