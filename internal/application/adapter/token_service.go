// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	TokenID    string
	UserID     uuid.UUID
	Email      string
	RememberMe bool
	ExpiresAt  time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateRefreshToken invalidates a refresh token.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// IsRefreshTokenValid checks if a refresh token is still valid (not invalidated).
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
}

// SessionStore keeps the refresh tokens that are still allowed to be exchanged.
type SessionStore interface {
	// SetToken stores the token key for the user until ttl elapses.
	SetToken(ctx context.Context, key string, userID uuid.UUID, ttl time.Duration) error

	// GetToken returns the user owning the key, or false when the key is absent or expired.
	GetToken(ctx context.Context, key string) (uuid.UUID, bool, error)

	// ClearToken removes the key. Clearing an absent key is not an error.
	ClearToken(ctx context.Context, key string) error
}
