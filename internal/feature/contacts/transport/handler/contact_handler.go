// Package handler provides HTTP handlers for the contacts feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"goldhouse_backend/internal/api"
	"goldhouse_backend/internal/feature/contacts/domain/entity"
	"goldhouse_backend/internal/feature/contacts/transport/http/dto"
	"goldhouse_backend/internal/feature/contacts/usecase"
)

// ContactUsecase defines the usecase operations for contact inquiries.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ContactUsecase interface {
	Create(ctx context.Context, fullName, phoneNumber, subject, message string) (uint, error)
	List(ctx context.Context) ([]entity.Contact, error)
	Get(ctx context.Context, id uint) (*entity.Contact, error)
	Delete(ctx context.Context, id uint) error
}

// ContactHandler handles HTTP requests for contact inquiries.
type ContactHandler struct {
	uc ContactUsecase
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(uc ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Create accepts a public inquiry submission.
// Validation failures return 400 before any store access.
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("contact create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	id, err := h.uc.Create(c.Request.Context(), req.FullName, req.PhoneNumber, req.Subject, req.Message)
	if err != nil {
		slog.Error("contact create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, api.CreatedResponse{ID: id})
}

// List returns all inquiries, newest first. Gated.
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("contact list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	out := make([]dto.ContactItem, 0, len(contacts))
	for i := range contacts {
		out = append(out, dto.FromEntity(&contacts[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns a single inquiry by ID. Gated.
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contact, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(contact))
}

// Delete removes an inquiry by ID. Gated.
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "contact deleted"})
}

func (h *ContactHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrContactNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "contact not found"})
		return
	}
	slog.Error("contact operation failed", "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}
