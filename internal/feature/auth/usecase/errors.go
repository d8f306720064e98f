// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

// ErrInvalidCredentials is returned when the username or password is incorrect.
// Login must not reveal which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")
