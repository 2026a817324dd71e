// Package model defines database models for persistence layer.
package model

import "time"

// SyntheticDateModel represents the synthetic_dates table: one row per transaction seed.
type SyntheticDateModel struct {
	Namespace string    `gorm:"type:varchar(50);primaryKey"`
	Seed      string    `gorm:"type:varchar(300);primaryKey"`
	Date      string    `gorm:"type:varchar(30);not null"` // ISO-8601, UTC, millisecond precision
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SyntheticDateModel.
func (SyntheticDateModel) TableName() string {
	return "synthetic_dates"
}
