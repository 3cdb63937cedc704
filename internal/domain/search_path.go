package domain

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SearchPathFilter strips ephemeral entries from a search path before it is stored
type SearchPathFilter struct {
	Excludes  []string // doublestar patterns matched against each entry
	TempRoots []string // entries equal to or under these directories are dropped
}

// NewSearchPathFilter builds a filter rooted at the platform temp directory.
// The symlink-resolved form is added as well (macOS /var -> /private/var).
func NewSearchPathFilter(excludes []string) SearchPathFilter {
	tmp := filepath.Clean(os.TempDir())
	roots := []string{tmp}
	if resolved, err := filepath.EvalSymlinks(tmp); err == nil && resolved != tmp {
		roots = append(roots, resolved)
	}
	return SearchPathFilter{Excludes: excludes, TempRoots: roots}
}

// Apply returns the filtered search path and the entries that were dropped.
// Order is preserved and duplicates keep their first position.
func (f SearchPathFilter) Apply(searchPath string) (string, []string) {
	var kept, removed []string
	seen := make(map[string]bool)

	for _, entry := range SplitSearchPath(searchPath) {
		if seen[entry] {
			continue
		}
		seen[entry] = true

		if f.isTemp(entry) || f.isExcluded(entry) {
			removed = append(removed, entry)
			continue
		}
		kept = append(kept, entry)
	}

	return JoinSearchPath(kept), removed
}

func (f SearchPathFilter) isTemp(entry string) bool {
	clean := filepath.Clean(entry)
	for _, root := range f.TempRoots {
		if clean == root || strings.HasPrefix(clean, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (f SearchPathFilter) isExcluded(entry string) bool {
	for _, pattern := range f.Excludes {
		if ok, err := doublestar.PathMatch(pattern, entry); err == nil && ok {
			return true
		}
	}
	return false
}

// SplitSearchPath splits on the OS list separator and drops blank entries
func SplitSearchPath(searchPath string) []string {
	if searchPath == "" {
		return nil
	}
	parts := filepath.SplitList(searchPath)
	entries := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}

// JoinSearchPath joins entries with the OS list separator
func JoinSearchPath(entries []string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}

// AppendSearchPath appends dir unless it is already present
func AppendSearchPath(searchPath, dir string) string {
	if dir == "" {
		return searchPath
	}
	entries := SplitSearchPath(searchPath)
	for _, e := range entries {
		if filepath.Clean(e) == filepath.Clean(dir) {
			return searchPath
		}
	}
	return JoinSearchPath(append(entries, dir))
}

// RemoveSearchPath removes every entry equal to dir
func RemoveSearchPath(searchPath, dir string) string {
	var kept []string
	for _, e := range SplitSearchPath(searchPath) {
		if filepath.Clean(e) != filepath.Clean(dir) {
			kept = append(kept, e)
		}
	}
	return JoinSearchPath(kept)
}
