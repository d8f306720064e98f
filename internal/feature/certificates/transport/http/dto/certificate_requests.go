// Package dto defines data transfer objects for the certificates feature's HTTP transport layer.
package dto

import (
	"time"

	"goldhouse_backend/internal/feature/certificates/domain/entity"
)

// CreateCertificateReq represents the request body for POST /api/certificate.
type CreateCertificateReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	FilePath    string `json:"file_path" binding:"required"`
}

// UpdateCertificateReq represents the request body for PATCH /api/certificate/:id.
// Nil fields are left unchanged.
type UpdateCertificateReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	FilePath    *string `json:"file_path"`
}

// CertificateItem represents a single certificate in responses.
type CertificateItem struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FilePath    string    `json:"file_path"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromEntity converts a domain certificate into its response representation.
func FromEntity(c *entity.Certificate) CertificateItem {
	return CertificateItem{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		FilePath:    c.FilePath,
		CreatedAt:   c.CreatedAt,
	}
}
