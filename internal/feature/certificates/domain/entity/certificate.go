// Package entity defines the domain entities for the certificates feature.
package entity

import "time"

// Certificate represents a quality or authenticity certificate published
// on the platform.
type Certificate struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:100;not null"`
	Description string `gorm:"type:text;not null"`
	FilePath    string `gorm:"type:text;not null"`
	CreatedAt   time.Time
}
