// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"goldhouse_backend/internal/api"
	"goldhouse_backend/internal/feature/users/domain/entity"
	"goldhouse_backend/internal/feature/users/transport/http/dto"
	"goldhouse_backend/internal/feature/users/usecase"
)

// UserUsecase はユーザー管理操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	Create(ctx context.Context, fullName, phoneNumber, username, password string) (uint, error)
	List(ctx context.Context) ([]entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	Update(ctx context.Context, id uint, params usecase.UpdateParams) error
	Delete(ctx context.Context, id uint) error
}

// UserHandler はユーザー管理のHTTPリクエストを処理します。
type UserHandler struct {
	uc UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(uc UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List は登録ユーザーの一覧を返します。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("user list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	out := make([]dto.UserItem, 0, len(users))
	for i := range users {
		out = append(out, dto.FromEntity(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get はIDでユーザーを返します。存在しない場合は404を返します。
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(user))
}

// Create は新規ユーザーを登録します。
// - バリデーションエラー時は400を返却
// - ユーザー名・電話番号の重複時は409を返却
// - 成功時は新規ユーザーのID付きで201を返却
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	id, err := h.uc.Create(c.Request.Context(), req.FullName, req.PhoneNumber, req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	slog.Info("user created", "id", id, "username", req.Username)
	c.JSON(http.StatusCreated, api.CreatedResponse{ID: id})
}

// Update は既存ユーザーを部分更新します。
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	params := usecase.UpdateParams{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Username:    req.Username,
		Password:    req.Password,
	}
	if err := h.uc.Update(c.Request.Context(), id, params); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "user updated"})
}

// Delete はIDでユーザーを削除します。
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	slog.Info("user deleted", "id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "user deleted"})
}

// respondError はusecaseエラーをHTTPステータスに変換します。
func (h *UserHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
	case errors.Is(err, usecase.ErrUsernameAlreadyExists):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "username already exists"})
	case errors.Is(err, usecase.ErrPhoneNumberAlreadyExists):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "phone number already exists"})
	default:
		slog.Error("user operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

// parseID はパスパラメータのIDを解析します。不正な場合は400を返します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}
