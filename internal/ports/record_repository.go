package ports

import (
	"context"

	"workset/internal/domain"
)

// RecordReader reads stored session records
type RecordReader interface {
	Exists(ctx context.Context, name string) (bool, error)
	Get(ctx context.Context, name string) (*domain.Record, error)
	List(ctx context.Context) ([]string, error)
}

// RecordWriter stores session records. Put replaces any record with the same name.
type RecordWriter interface {
	Put(ctx context.Context, record domain.Record) error
}

// LastUsedPointer tracks the most recently saved session
type LastUsedPointer interface {
	// LastUsed returns "" when nothing has been saved yet
	LastUsed(ctx context.Context) (string, error)
	SetLastUsed(ctx context.Context, name string) error
}

// RecordRepository is the composite interface
type RecordRepository interface {
	LastUsedPointer
	RecordReader
	RecordWriter
	Close() error
}
