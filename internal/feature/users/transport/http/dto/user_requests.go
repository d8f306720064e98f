// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import (
	"time"

	"goldhouse_backend/internal/feature/users/domain/entity"
)

// CreateUserReq represents the request body for POST /api/user.
type CreateUserReq struct {
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

// UpdateUserReq represents the request body for PATCH /api/user/:id.
// Nil fields are left unchanged.
type UpdateUserReq struct {
	FullName    *string `json:"full_name"`
	PhoneNumber *string `json:"phone_number"`
	Username    *string `json:"username"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
}

// UserItem represents a single user in responses.
// The password hash is never serialized.
type UserItem struct {
	ID          uint      `json:"id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromEntity converts a domain user into its response representation.
func FromEntity(u *entity.User) UserItem {
	return UserItem{
		ID:          u.ID,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		Username:    u.Username,
		CreatedAt:   u.CreatedAt,
	}
}
