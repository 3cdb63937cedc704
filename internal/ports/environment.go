package ports

// Environment is the live editor environment a session is captured from and restored into
type Environment interface {
	EnvironmentReader
	EnvironmentWriter
}

// EnvironmentReader exposes the live state
type EnvironmentReader interface {
	// ActiveDocument returns "" when no document has focus
	ActiveDocument() string
	// CurrentSession returns "" when no session is associated with the environment
	CurrentSession() string
	Documents() []string
	// InstallDir is the tool's own directory, which must stay on the search path
	InstallDir() string
	SearchPath() string
	WorkingDirectory() string
}

// EnvironmentWriter mutates the live state
type EnvironmentWriter interface {
	ChangeDirectory(dir string) error
	// CloseAllDocuments closes every document without prompting
	CloseAllDocuments() error
	CloseDocument(path string) error
	FocusDocument(path string) error
	OpenDocument(path string) error
	SetCurrentSession(name string) error
	// SetSearchPath applies what it can and reports entries it could not apply
	SetSearchPath(searchPath string) error
	// Flush persists pending changes
	Flush() error
}
