// Package handler provides HTTP handlers for the certificates feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"goldhouse_backend/internal/api"
	"goldhouse_backend/internal/feature/certificates/domain/entity"
	"goldhouse_backend/internal/feature/certificates/transport/http/dto"
	"goldhouse_backend/internal/feature/certificates/usecase"
)

// CertificateUsecase defines the usecase operations for certificates.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CertificateUsecase interface {
	Create(ctx context.Context, title, description, filePath string) (uint, error)
	List(ctx context.Context) ([]entity.Certificate, error)
	Get(ctx context.Context, id uint) (*entity.Certificate, error)
	Update(ctx context.Context, id uint, params usecase.UpdateParams) error
	Delete(ctx context.Context, id uint) error
}

// CertificateHandler handles HTTP requests for certificates.
type CertificateHandler struct {
	uc CertificateUsecase
}

// NewCertificateHandler creates a new CertificateHandler.
func NewCertificateHandler(uc CertificateUsecase) *CertificateHandler {
	return &CertificateHandler{uc: uc}
}

// List returns all certificates, newest first. Public endpoint.
func (h *CertificateHandler) List(c *gin.Context) {
	certs, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("certificate list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	out := make([]dto.CertificateItem, 0, len(certs))
	for i := range certs {
		out = append(out, dto.FromEntity(&certs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns a single certificate by ID. Public endpoint.
func (h *CertificateHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cert, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(cert))
}

// Create stores a new certificate. Gated.
func (h *CertificateHandler) Create(c *gin.Context) {
	var req dto.CreateCertificateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("certificate create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	id, err := h.uc.Create(c.Request.Context(), req.Title, req.Description, req.FilePath)
	if err != nil {
		slog.Error("certificate create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, api.CreatedResponse{ID: id})
}

// Update applies a partial update to an existing certificate. Gated.
func (h *CertificateHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateCertificateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("certificate update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	params := usecase.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
		FilePath:    req.FilePath,
	}
	if err := h.uc.Update(c.Request.Context(), id, params); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "certificate updated"})
}

// Delete removes a certificate by ID. Gated.
func (h *CertificateHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "certificate deleted"})
}

func (h *CertificateHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrCertificateNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "certificate not found"})
		return
	}
	slog.Error("certificate operation failed", "error", err)
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
