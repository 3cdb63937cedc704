package storage

import (
	"slices"

	"workset/internal/domain"
)

// recordModelToDomain converts a RecordModel (GORM) to domain.Record
func recordModelToDomain(m RecordModel) domain.Record {
	return domain.Record{
		ActiveFile:       m.ActiveFile,
		Name:             m.Name,
		OpenFiles:        nonNil(m.OpenFiles),
		SavedAt:          m.SavedAt,
		SearchPath:       m.SearchPath,
		WorkingDirectory: m.WorkingDirectory,
	}
}

// domainToRecordModel converts a domain.Record to RecordModel (GORM)
func domainToRecordModel(r domain.Record) RecordModel {
	return RecordModel{
		ActiveFile:       r.ActiveFile,
		Name:             r.Name,
		OpenFiles:        nonNil(slices.Clone(r.OpenFiles)),
		SavedAt:          r.SavedAt.UTC(),
		SearchPath:       r.SearchPath,
		WorkingDirectory: r.WorkingDirectory,
	}
}

// recordFileToDomain converts the TOML shape to domain.Record
func recordFileToDomain(f recordFile) domain.Record {
	return domain.Record{
		ActiveFile:       f.ActiveFile,
		Name:             f.Name,
		OpenFiles:        nonNil(f.OpenFiles),
		SavedAt:          f.SavedAt,
		SearchPath:       f.SearchPath,
		WorkingDirectory: f.WorkingDirectory,
	}
}

// domainToRecordFile converts a domain.Record to the TOML shape
func domainToRecordFile(r domain.Record) recordFile {
	return recordFile{
		ActiveFile:       r.ActiveFile,
		Name:             r.Name,
		OpenFiles:        nonNil(r.OpenFiles),
		SavedAt:          r.SavedAt.UTC(),
		SearchPath:       r.SearchPath,
		WorkingDirectory: r.WorkingDirectory,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
