// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finance-academy/backend/internal/application/adapter"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	tokenIssuer = "finance-academy"

	sessionKeyPrefix = "session:refresh:"
)

// TokenDurations configures access and refresh token lifetimes.
type TokenDurations struct {
	Access            time.Duration
	Refresh           time.Duration
	RememberMeAccess  time.Duration
	RememberMeRefresh time.Duration
}

// DefaultTokenDurations returns the lifetimes used when none are configured.
func DefaultTokenDurations() TokenDurations {
	return TokenDurations{
		Access:            15 * time.Minute,
		Refresh:           7 * 24 * time.Hour,
		RememberMeAccess:  7 * 24 * time.Hour,
		RememberMeRefresh: 30 * 24 * time.Hour,
	}
}

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	TokenType  string `json:"token_type"`
	RememberMe bool   `json:"remember_me,omitempty"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
// Refresh tokens are only accepted while their ID is present in the session store.
type tokenService struct {
	secret    []byte
	durations TokenDurations
	sessions  adapter.SessionStore
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, durations TokenDurations, sessions adapter.SessionStore) adapter.TokenService {
	return &tokenService{
		secret:    []byte(secret),
		durations: durations,
		sessions:  sessions,
	}
}

// GenerateTokenPair generates a new access and refresh token pair.
func (s *tokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*adapter.TokenPair, error) {
	accessDuration := s.durations.Access
	refreshDuration := s.durations.Refresh
	if rememberMe {
		accessDuration = s.durations.RememberMeAccess
		refreshDuration = s.durations.RememberMeRefresh
	}

	accessToken, err := s.generateJWT(uuid.NewString(), userID, email, tokenTypeAccess, rememberMe, accessDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshID := uuid.NewString()
	refreshToken, err := s.generateJWT(refreshID, userID, email, tokenTypeRefresh, rememberMe, refreshDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.sessions.SetToken(ctx, sessionKeyPrefix+refreshID, userID, refreshDuration); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validate(token, tokenTypeAccess)
}

// ValidateRefreshToken validates a refresh token and returns its claims.
func (s *tokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validate(token, tokenTypeRefresh)
}

// InvalidateRefreshToken removes the refresh token from the session store.
func (s *tokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	claims, err := s.validate(token, tokenTypeRefresh)
	if err != nil {
		return err
	}
	return s.sessions.ClearToken(ctx, sessionKeyPrefix+claims.TokenID)
}

// IsRefreshTokenValid checks the token is still present in the session store
// and owned by the user named in its claims.
func (s *tokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	claims, err := s.validate(token, tokenTypeRefresh)
	if err != nil {
		return false, nil
	}

	owner, found, err := s.sessions.GetToken(ctx, sessionKeyPrefix+claims.TokenID)
	if err != nil {
		return false, err
	}
	return found && owner == claims.UserID, nil
}

func (s *tokenService) validate(token, tokenType string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("invalid token type: expected %s token", tokenType)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	return &adapter.TokenClaims{
		TokenID:    claims.ID,
		UserID:     userID,
		Email:      claims.Email,
		RememberMe: claims.RememberMe,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}

// generateJWT creates a new signed JWT token.
func (s *tokenService) generateJWT(id string, userID uuid.UUID, email, tokenType string, rememberMe bool, duration time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID:     userID.String(),
		Email:      email,
		TokenType:  tokenType,
		RememberMe: rememberMe,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
