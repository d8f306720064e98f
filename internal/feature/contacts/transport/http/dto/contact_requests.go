// Package dto defines data transfer objects for the contacts feature's HTTP transport layer.
package dto

import (
	"time"

	"goldhouse_backend/internal/feature/contacts/domain/entity"
)

// CreateContactReq represents the request body for POST /api/contact.
// Submission is public; every field is required.
type CreateContactReq struct {
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// ContactItem represents a single inquiry in responses.
type ContactItem struct {
	ID          uint      `json:"id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromEntity converts a domain contact into its response representation.
func FromEntity(c *entity.Contact) ContactItem {
	return ContactItem{
		ID:          c.ID,
		FullName:    c.FullName,
		PhoneNumber: c.PhoneNumber,
		Subject:     c.Subject,
		Message:     c.Message,
		CreatedAt:   c.CreatedAt,
	}
}
