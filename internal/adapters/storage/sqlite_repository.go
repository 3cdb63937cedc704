package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"workset/internal/domain"
	"workset/internal/logging"
	"workset/internal/ports"
)

// SQLiteRepository implements ports.RecordRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.RecordRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the workset logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
		return
	}
	logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
}

func newGormLogger() logger.Interface {
	if os.Getenv("WORKSET_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&RecordModel{}, &LastUsedModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logging.Logger.Debug("SQLite repository opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the underlying database handle
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Exists reports whether a record row exists for name
func (r *SQLiteRepository) Exists(ctx context.Context, name string) (bool, error) {
	if err := domain.ValidateName(name); err != nil {
		return false, err
	}

	var count int64
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Model(&RecordModel{}).Where("name = ?", name).Count(&count).Error
	}, 3)
	if err != nil {
		return false, fmt.Errorf("failed to check session %s: %w", name, err)
	}
	return count > 0, nil
}

// Get reads the record stored under name
func (r *SQLiteRepository) Get(ctx context.Context, name string) (*domain.Record, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	var model RecordModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, name)
		}
		return nil, fmt.Errorf("failed to read session %s: %w", name, err)
	}

	record := recordModelToDomain(model)
	return &record, nil
}

// Put inserts or replaces the record
func (r *SQLiteRepository) Put(ctx context.Context, record domain.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	model := domainToRecordModel(record)
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"active_file", "open_files", "saved_at", "search_path", "updated_at", "working_directory"}),
		}).Create(&model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to write session %s: %w", record.Name, err)
	}

	logging.Logger.Debug("Session row written", "session", record.Name, "files", len(record.OpenFiles))
	return nil
}

// List returns stored record names, sorted
func (r *SQLiteRepository) List(ctx context.Context) ([]string, error) {
	names := []string{}
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Model(&RecordModel{}).Order("name").Pluck("name", &names).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return names, nil
}

// LastUsed returns the pointer, or "" if it was never set
func (r *SQLiteRepository) LastUsed(ctx context.Context) (string, error) {
	var model LastUsedModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).First(&model, lastUsedID).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read last session pointer: %w", err)
	}
	return model.Name, nil
}

// SetLastUsed overwrites the pointer row
func (r *SQLiteRepository) SetLastUsed(ctx context.Context, name string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}

	model := LastUsedModel{ID: lastUsedID, Name: name}
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
		}).Create(&model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to write last session pointer: %w", err)
	}
	return nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
