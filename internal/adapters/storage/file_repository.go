package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"workset/internal/domain"
	"workset/internal/logging"
	"workset/internal/ports"
)

const recordExt = ".toml"

// FileRepository implements ports.RecordRepository with one TOML file per record
type FileRepository struct {
	dir string
}

// Verify interface compliance at compile time
var _ ports.RecordRepository = (*FileRepository)(nil)

// recordFile is the on-disk shape of a record
type recordFile struct {
	Name             string    `toml:"name"`
	SavedAt          time.Time `toml:"saved_at"`
	WorkingDirectory string    `toml:"working_directory"`
	SearchPath       string    `toml:"search_path"`
	ActiveFile       string    `toml:"active_file"`
	OpenFiles        []string  `toml:"open_files"`
}

// pointerFile is the on-disk shape of the last-used pointer
type pointerFile struct {
	Name string `toml:"name"`
}

// NewFileRepository creates a FileRepository rooted at dir
func NewFileRepository(dir string) (*FileRepository, error) {
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sessions directory: %w", err)
	}
	cleanupTempFiles(dir)

	logging.Logger.Debug("File repository opened", "dir", dir)
	return &FileRepository{dir: dir}, nil
}

// Dir returns the directory holding the record files
func (r *FileRepository) Dir() string {
	return r.dir
}

func (r *FileRepository) recordPath(name string) string {
	return filepath.Join(r.dir, name+recordExt)
}

func (r *FileRepository) pointerPath() string {
	return filepath.Join(r.dir, domain.LastSessionName+recordExt)
}

// Close is a no-op for file storage
func (r *FileRepository) Close() error {
	return nil
}

// Exists reports whether a record file exists for name
func (r *FileRepository) Exists(ctx context.Context, name string) (bool, error) {
	if err := domain.ValidateName(name); err != nil {
		return false, err
	}
	_, err := os.Stat(r.recordPath(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat session %s: %w", name, err)
}

// Get reads the record stored under name
func (r *FileRepository) Get(ctx context.Context, name string) (*domain.Record, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.recordPath(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, name)
		}
		return nil, fmt.Errorf("failed to read session %s: %w", name, err)
	}

	var rf recordFile
	if err := toml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("invalid session file %s: %w", filepath.Base(r.recordPath(name)), err)
	}

	// The file stem is the identity
	rf.Name = name
	record := recordFileToDomain(rf)
	return &record, nil
}

// Put writes record, replacing any existing file with the same name
func (r *FileRepository) Put(ctx context.Context, record domain.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(domainToRecordFile(record))
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", record.Name, err)
	}

	if err := writeFileAtomic(r.recordPath(record.Name), data); err != nil {
		return fmt.Errorf("failed to write session %s: %w", record.Name, err)
	}

	logging.Logger.Debug("Session file written", "session", record.Name, "files", len(record.OpenFiles))
	return nil
}

// List returns stored record names, sorted, without the pointer file
func (r *FileRepository) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read sessions directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != recordExt {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), recordExt)
		if domain.ValidateName(name) != nil {
			// Skips the pointer and anything hand-made that we could not load
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// LastUsed returns the name in the pointer file, or "" if there is none
func (r *FileRepository) LastUsed(ctx context.Context) (string, error) {
	data, err := os.ReadFile(r.pointerPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read last session pointer: %w", err)
	}

	var pf pointerFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return "", fmt.Errorf("invalid last session pointer: %w", err)
	}
	return pf.Name, nil
}

// SetLastUsed overwrites the pointer file
func (r *FileRepository) SetLastUsed(ctx context.Context, name string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}

	data, err := toml.Marshal(pointerFile{Name: name})
	if err != nil {
		return fmt.Errorf("failed to encode last session pointer: %w", err)
	}
	if err := writeFileAtomic(r.pointerPath(), data); err != nil {
		return fmt.Errorf("failed to write last session pointer: %w", err)
	}
	return nil
}
