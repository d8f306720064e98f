// Package api defines the shared HTTP response types used across handlers.
package api

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for successful requests that carry
// no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreatedResponse is the body returned when a resource has been created.
type CreatedResponse struct {
	ID uint `json:"id"`
}
