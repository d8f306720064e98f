package jwtmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"goldhouse_backend/internal/feature/users/domain/entity"
	usersusecase "goldhouse_backend/internal/feature/users/usecase"
)

// ContextAccount is the gin context key under which the resolved account
// is stored for downstream handlers.
const ContextAccount = "account"

// ErrMissingToken is returned when a request carries no bearer token.
var ErrMissingToken = errors.New("missing bearer token")

// IdentityResolver resolves a token subject back to a stored account.
// Following Go convention: interfaces are defined by the consumer (middleware),
// not the provider (adapters).
type IdentityResolver interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// LoginRequired returns a Gin middleware that guards mutating handlers.
// It verifies the bearer token and re-resolves the subject against the
// user store on every request, so a deleted account loses access even
// while its token is still unexpired. All authentication failures collapse
// to the same 401 body; the reason is only distinguished in logs.
func LoginRequired(tokens Parser, users IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, err := authenticate(c, tokens, users)
		if err != nil {
			if errors.Is(err, usersusecase.ErrUserNotFound) ||
				errors.Is(err, ErrMissingToken) ||
				errors.Is(err, ErrInvalidToken) ||
				errors.Is(err, ErrExpiredToken) {
				slog.Warn("request rejected",
					"reason", err, "subject", username, "path", c.FullPath(), "remote_addr", c.ClientIP())
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
				return
			}
			// Store unreachable or similar infrastructure fault.
			slog.Error("identity resolution failed", "error", err, "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.Next()
	}
}

// authenticate runs the full token check chain and stores the resolved
// account in the gin context on success. It returns the token subject (when
// one could be extracted) alongside any failure, for logging.
func authenticate(c *gin.Context, tokens Parser, users IdentityResolver) (string, error) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", ErrMissingToken
	}
	tokenStr := strings.TrimPrefix(auth, "Bearer ")

	username, err := tokens.Parse(tokenStr)
	if err != nil {
		return "", err
	}

	// Re-resolve the subject against the store. Covers accounts deleted
	// after the token was issued.
	user, err := users.FindByUsername(c.Request.Context(), username)
	if err != nil {
		return username, err
	}

	c.Set(ContextAccount, user)
	return username, nil
}
