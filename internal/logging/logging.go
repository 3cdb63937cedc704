package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize runs.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize sets up the logger and returns the log file path ("" when logs are discarded).
// WORKSET_DEBUG, WORKSET_DEBUG_FILE and WORKSET_MAX_LOG_FILES are inherited from a parent process.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	inherited := os.Getenv("WORKSET_DEBUG") == "1"
	if inherited {
		debug = true
	}
	if envDebugFile := os.Getenv("WORKSET_DEBUG_FILE"); envDebugFile != "" && debugFile == "" {
		debugFile = envDebugFile
	}
	if envMaxLogFiles := os.Getenv("WORKSET_MAX_LOG_FILES"); envMaxLogFiles != "" && maxLogFiles == 1000 {
		if parsed, err := strconv.Atoi(envMaxLogFiles); err == nil {
			maxLogFiles = parsed
		}
	}

	if !debug && debugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	logFilePath, err := resolveLogFile(debugFile, maxLogFiles)
	if err != nil {
		return "", err
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if !inherited {
		Logger.Info("Debug logging initialized", "log_file", logFilePath)
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", logFilePath)
	}

	return logFilePath, nil
}

// resolveLogFile picks the custom debug file or a fresh <uuid>.log in the OS log directory
func resolveLogFile(debugFile string, maxLogFiles int) (string, error) {
	if debugFile != "" {
		// Custom files are never rotated
		if err := os.MkdirAll(filepath.Dir(debugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return debugFile, nil
	}

	logDir, err := getLogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if maxLogFiles > 0 {
		if err := rotateLogs(logDir, maxLogFiles); err != nil {
			// Rotation failure shouldn't prevent logging
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(logDir, uuid.New().String()+".log"), nil
}

// rotateLogs removes the oldest .log files so that one more fits under maxLogFiles
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(logDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	numToDelete := len(logFiles) - maxLogFiles + 1
	for i := 0; i < numToDelete && i < len(logFiles); i++ {
		if err := os.Remove(logFiles[i].path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", logFiles[i].path, err)
		}
	}

	return nil
}

// getLogDir returns the OS-specific log directory
func getLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "workset"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "workset"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "workset", "logs"), nil
	default:
		return filepath.Join(homeDir, ".workset", "logs"), nil
	}
}
