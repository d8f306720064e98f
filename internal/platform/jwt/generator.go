package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token validation errors. The middleware logs the distinction but the
// HTTP response never exposes which check failed.
var (
	// ErrInvalidToken is returned when a token is malformed or its signature
	// does not verify against the configured secret.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's exp claim is in the past.
	ErrExpiredToken = errors.New("token has expired")
)

// Issuer defines the interface for signed token issuance.
type Issuer interface {
	// Issue creates a signed token carrying the given username as subject.
	Issue(username string) (string, error)
}

// Parser defines the interface for token verification.
type Parser interface {
	// Parse verifies the token's signature and expiry and returns the subject.
	Parse(tokenStr string) (string, error)
}

// tokenCodec implements both Issuer and Parser with a shared HMAC secret.
// The secret and TTL are injected at construction; nothing is read from
// ambient process state.
type tokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a token issuer/parser with the provided secret and
// token lifetime.
func NewTokenCodec(secret string, ttl time.Duration) *tokenCodec {
	return &tokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed HS256 token with standard claims.
// The subject claim carries the username; validity runs from now to now+TTL.
func (c *tokenCodec) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(c.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse verifies the token and extracts the subject (username).
// Expired tokens yield ErrExpiredToken; any other verification failure,
// including a tampered signature or a non-HMAC algorithm, yields
// ErrInvalidToken.
func (c *tokenCodec) Parse(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
