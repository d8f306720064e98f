// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by ID or username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when attempting to create or update
	// a user with a username that is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrPhoneNumberAlreadyExists is returned when attempting to create or update
	// a user with a phone number that is already taken.
	ErrPhoneNumberAlreadyExists = errors.New("phone number already exists")
)
