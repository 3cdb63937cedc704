package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"workset/internal/logging"
)

const tmpSuffix = ".tmp"

// writeFileAtomic writes data next to path and renames it into place,
// so a crash leaves either the old file or the new one.
func writeFileAtomic(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*"+tmpSuffix)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Removing after a successful rename is a no-op
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		logging.Logger.Warn("fsync failed", "path", tmpPath, "error", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", filepath.Base(path), err)
	}
	return nil
}

// cleanupTempFiles removes leftover temp files from interrupted writes
func cleanupTempFiles(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), tmpSuffix) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			logging.Logger.Warn("Failed to clean up temp file", "path", path, "error", err)
			continue
		}
		logging.Logger.Debug("Cleaned up leftover temp file", "path", path)
	}
}
