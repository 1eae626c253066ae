package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair holds an access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims holds the validated identity carried by a token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token against the store and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateRefreshToken marks a refresh token as invalidated.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// InvalidateAllUserTokens invalidates every refresh token for a user.
	InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

// ResetTokenService defines the interface for password reset token operations.
type ResetTokenService interface {
	// GenerateResetToken creates and stores a reset token for the user.
	GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (token string, expiresAt time.Time, err error)

	// ValidateResetToken checks a reset token and returns the identity it was issued for.
	ValidateResetToken(ctx context.Context, token string) (*TokenClaims, error)

	// ConsumeResetToken marks a reset token as used.
	ConsumeResetToken(ctx context.Context, token string) error
}
