// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered account on the platform.
// It carries the credentials used for authentication and is the
// identity that issued tokens resolve back to.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// FullName is the user's display name.
	FullName string `gorm:"size:100;not null"`

	// PhoneNumber is the user's phone number.
	// It must be unique across all users.
	PhoneNumber string `gorm:"uniqueIndex;size:13;not null"`

	// Username is the login name embedded in tokens as the identity claim.
	// It must be unique across all users and is matched case-sensitively.
	Username string `gorm:"uniqueIndex;size:100;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores the plaintext.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time
}
