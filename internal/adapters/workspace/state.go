package workspace

import (
	"fmt"
	"slices"
	"time"
)

// workspaceState is the live environment as persisted in workspace.json
type workspaceState struct {
	Active           string    `json:"active"`
	Documents        []string  `json:"documents"`
	SearchPath       string    `json:"search_path"`
	Session          string    `json:"session"` // Current session; replaces the window label
	UpdatedAt        time.Time `json:"updated_at"`
	WorkingDirectory string    `json:"working_directory"`
}

// open appends path unless it is already open, and focuses it
func (s *workspaceState) open(path string) {
	if !slices.Contains(s.Documents, path) {
		s.Documents = append(s.Documents, path)
	}
	s.Active = path
}

func (s *workspaceState) close(path string) error {
	idx := slices.Index(s.Documents, path)
	if idx < 0 {
		return fmt.Errorf("document is not open: %s", path)
	}
	s.Documents = slices.Delete(s.Documents, idx, idx+1)

	if s.Active == path {
		s.Active = ""
		if len(s.Documents) > 0 {
			s.Active = s.Documents[len(s.Documents)-1]
		}
	}
	return nil
}

func (s *workspaceState) closeAll() {
	s.Documents = []string{}
	s.Active = ""
}

func (s *workspaceState) focus(path string) error {
	if !slices.Contains(s.Documents, path) {
		return fmt.Errorf("document is not open: %s", path)
	}
	s.Active = path
	return nil
}

func (s *workspaceState) documents() []string {
	return slices.Clone(s.Documents)
}
