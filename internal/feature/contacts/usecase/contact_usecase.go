// Package usecase implements the business logic for the contacts feature.
package usecase

import (
	"context"
	"errors"

	"goldhouse_backend/internal/feature/contacts/domain/entity"
)

// ErrContactNotFound is returned when a contact cannot be found by ID.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository abstracts the persistence layer for contact inquiries.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	List(ctx context.Context) ([]entity.Contact, error)
	FindByID(ctx context.Context, id uint) (*entity.Contact, error)
	Delete(ctx context.Context, id uint) error
}

// ContactUsecase provides business logic for contact operations.
type ContactUsecase struct {
	repo ContactRepository
}

// NewContactUsecase creates a new ContactUsecase with the given repository.
func NewContactUsecase(r ContactRepository) *ContactUsecase {
	return &ContactUsecase{repo: r}
}

// Create stores a new inquiry and returns its ID.
func (u *ContactUsecase) Create(ctx context.Context, fullName, phoneNumber, subject, message string) (uint, error) {
	contact := &entity.Contact{
		FullName:    fullName,
		PhoneNumber: phoneNumber,
		Subject:     subject,
		Message:     message,
	}
	if err := u.repo.Create(ctx, contact); err != nil {
		return 0, err
	}
	return contact.ID, nil
}

// List returns all inquiries, newest first.
func (u *ContactUsecase) List(ctx context.Context) ([]entity.Contact, error) {
	return u.repo.List(ctx)
}

// Get returns a single inquiry by ID.
func (u *ContactUsecase) Get(ctx context.Context, id uint) (*entity.Contact, error) {
	return u.repo.FindByID(ctx, id)
}

// Delete removes an inquiry by ID.
func (u *ContactUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
