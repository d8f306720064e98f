// Package entity defines the domain entities for the contacts feature.
package entity

import "time"

// Contact represents an inquiry submitted through the public contact form.
type Contact struct {
	ID          uint   `gorm:"primaryKey"`
	FullName    string `gorm:"size:100;not null"`
	PhoneNumber string `gorm:"size:20;not null"`
	Subject     string `gorm:"size:100;not null"`
	Message     string `gorm:"type:text;not null"`
	CreatedAt   time.Time
}
