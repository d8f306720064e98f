// Package handler はproductsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"goldhouse_backend/internal/api"
	"goldhouse_backend/internal/feature/products/domain/entity"
	"goldhouse_backend/internal/feature/products/transport/http/dto"
	"goldhouse_backend/internal/feature/products/usecase"
)

// ProductUsecase は商品操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ProductUsecase interface {
	Create(ctx context.Context, title, description, imagePath string, proba int, gramm float64, typ string) (uint, error)
	List(ctx context.Context) ([]entity.Product, error)
	Get(ctx context.Context, id uint) (*entity.Product, error)
	Update(ctx context.Context, id uint, params usecase.UpdateParams) error
	Delete(ctx context.Context, id uint) error
}

// ProductHandler は商品のHTTPリクエストを処理します。
type ProductHandler struct {
	uc ProductUsecase
}

// NewProductHandler はProductHandlerの新しいインスタンスを生成します。
func NewProductHandler(uc ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List は商品一覧を返します。公開エンドポイントです。
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("product list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	out := make([]dto.ProductItem, 0, len(products))
	for i := range products {
		out = append(out, dto.FromEntity(&products[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get はIDで商品を返します。公開エンドポイントです。
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(product))
}

// Create は新規商品を登録します。
// 必須フィールドが欠けている場合、ストアへのアクセス前に400を返します。
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("product create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	id, err := h.uc.Create(c.Request.Context(),
		req.Title, req.Description, req.ImagePath, *req.Proba, *req.Gramm, req.Type)
	if err != nil {
		slog.Error("product create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	slog.Info("product created", "id", id)
	c.JSON(http.StatusCreated, api.CreatedResponse{ID: id})
}

// Update は既存商品を部分更新します。
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("product update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	params := usecase.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
		ImagePath:   req.ImagePath,
		Proba:       req.Proba,
		Gramm:       req.Gramm,
		Type:        req.Type,
	}
	if err := h.uc.Update(c.Request.Context(), id, params); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "product updated"})
}

// Delete はIDで商品を削除します。
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	slog.Info("product deleted", "id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "product deleted"})
}

func (h *ProductHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "product not found"})
		return
	}
	slog.Error("product operation failed", "error", err)
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
