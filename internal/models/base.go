package models

import (
	"time"

	"sitekhata/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all record tables
type Base struct {
	ID        ID             `gorm:"type:text;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook generates a UUIDv7 for new records. Records restored
// from a backup keep their original identifiers.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = ID(uuid.New())
	}
	return nil
}

// All returns every model for schema migration.
func All() []interface{} {
	return []interface{}{
		&Income{},
		&Expense{},
		&Vendor{},
		&LabourProfile{},
		&Attendance{},
		&LabourPayment{},
		&AppSettings{},
	}
}
