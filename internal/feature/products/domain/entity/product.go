// Package entity defines the domain entities for the products feature.
package entity

import "time"

// Product represents a jewelry item in the public catalog.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:100;not null"`
	Description string `gorm:"type:text;not null"`
	ImagePath   string `gorm:"type:text;not null"`

	// Proba is the gold purity mark (e.g. 585, 750).
	Proba int `gorm:"not null"`

	// Gramm is the item weight in grams.
	Gramm float64 `gorm:"not null"`

	// Type is the product category (ring, chain, ...).
	Type string `gorm:"size:100;not null"`

	CreatedAt time.Time
}
