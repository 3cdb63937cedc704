package storage

import "time"

// RecordModel is the GORM model for records table
type RecordModel struct {
	ActiveFile       string `gorm:"not null;default:''"`
	CreatedAt        time.Time
	Name             string    `gorm:"primaryKey"`
	OpenFiles        []string  `gorm:"serializer:json;not null"`
	SavedAt          time.Time `gorm:"not null;index:idx_saved_at"`
	SearchPath       string    `gorm:"not null;default:''"`
	UpdatedAt        time.Time
	WorkingDirectory string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (RecordModel) TableName() string { return "records" }

// LastUsedModel is the GORM model for the single-row last-used pointer
type LastUsedModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (LastUsedModel) TableName() string { return "last_used" }

// lastUsedID is the primary key of the only last_used row
const lastUsedID = 1
