// Package usecase implements the business logic for the certificates feature.
package usecase

import (
	"context"
	"errors"

	"goldhouse_backend/internal/feature/certificates/domain/entity"
)

// ErrCertificateNotFound is returned when a certificate cannot be found by ID.
var ErrCertificateNotFound = errors.New("certificate not found")

// CertificateRepository abstracts the persistence layer for certificates.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CertificateRepository interface {
	Create(ctx context.Context, cert *entity.Certificate) error
	List(ctx context.Context) ([]entity.Certificate, error)
	FindByID(ctx context.Context, id uint) (*entity.Certificate, error)
	Save(ctx context.Context, cert *entity.Certificate) error
	Delete(ctx context.Context, id uint) error
}

// UpdateParams holds the partial-update fields for a certificate.
// Nil fields are left unchanged.
type UpdateParams struct {
	Title       *string
	Description *string
	FilePath    *string
}

// CertificateUsecase provides business logic for certificate operations.
type CertificateUsecase struct {
	repo CertificateRepository
}

// NewCertificateUsecase creates a new CertificateUsecase with the given repository.
func NewCertificateUsecase(r CertificateRepository) *CertificateUsecase {
	return &CertificateUsecase{repo: r}
}

// Create stores a new certificate and returns its ID.
func (u *CertificateUsecase) Create(ctx context.Context, title, description, filePath string) (uint, error) {
	cert := &entity.Certificate{
		Title:       title,
		Description: description,
		FilePath:    filePath,
	}
	if err := u.repo.Create(ctx, cert); err != nil {
		return 0, err
	}
	return cert.ID, nil
}

// List returns all certificates, newest first.
func (u *CertificateUsecase) List(ctx context.Context) ([]entity.Certificate, error) {
	return u.repo.List(ctx)
}

// Get returns a single certificate by ID.
func (u *CertificateUsecase) Get(ctx context.Context, id uint) (*entity.Certificate, error) {
	return u.repo.FindByID(ctx, id)
}

// Update applies the non-nil fields to an existing certificate.
func (u *CertificateUsecase) Update(ctx context.Context, id uint, params UpdateParams) error {
	cert, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if params.Title != nil {
		cert.Title = *params.Title
	}
	if params.Description != nil {
		cert.Description = *params.Description
	}
	if params.FilePath != nil {
		cert.FilePath = *params.FilePath
	}

	return u.repo.Save(ctx, cert)
}

// Delete removes a certificate by ID.
func (u *CertificateUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
