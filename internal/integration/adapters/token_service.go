package adapters

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/integration/persistence"
)

const (
	accessTokenDuration  = 15 * time.Minute
	refreshTokenDuration = 7 * 24 * time.Hour
	resetTokenDuration   = 1 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	tokenIssuer = "lifeledger"
)

// CustomClaims are the JWT claims carried by both token types.
type CustomClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret []byte
	store  persistence.TokenRepository
}

// NewTokenService creates an HS256 token service. Refresh tokens are
// persisted so they can be rotated and revoked.
func NewTokenService(secret string, store persistence.TokenRepository) adapter.TokenService {
	return &tokenService{secret: []byte(secret), store: store}
}

// GenerateTokenPair issues an access/refresh pair and stores the refresh
// token.
func (s *tokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	access, err := s.sign(userID, email, tokenTypeAccess, accessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	refresh, err := s.sign(userID, email, tokenTypeRefresh, refreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("signing refresh token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(refreshTokenDuration)
	if err := s.store.SaveRefreshToken(ctx, refresh, userID, expiresAt); err != nil {
		return nil, fmt.Errorf("saving refresh token: %w", err)
	}

	return &adapter.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ValidateAccessToken checks the signature and token type.
func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, fmt.Errorf("invalid token type: expected access token")
	}
	return claimsOut(claims)
}

// ValidateRefreshToken checks the signature and the store, so a rotated
// or revoked token is rejected even when its signature is still good.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return nil, fmt.Errorf("invalid token type: expected refresh token")
	}

	valid, err := s.store.IsRefreshTokenValid(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("checking refresh token: %w", err)
	}
	if !valid {
		return nil, fmt.Errorf("refresh token is invalidated or expired")
	}
	return claimsOut(claims)
}

func (s *tokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	return s.store.InvalidateRefreshToken(ctx, token)
}

func (s *tokenService) InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	return s.store.InvalidateAllUserRefreshTokens(ctx, userID)
}

func claimsOut(claims *CustomClaims) (*adapter.TokenClaims, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}
	return &adapter.TokenClaims{UserID: userID, Email: claims.Email}, nil
}

func (s *tokenService) sign(userID uuid.UUID, email, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID:    userID.String(),
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *tokenService) parse(raw string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

type resetTokenService struct {
	store persistence.TokenRepository
}

// NewResetTokenService creates the password reset token service.
func NewResetTokenService(store persistence.TokenRepository) adapter.ResetTokenService {
	return &resetTokenService{store: store}
}

// GenerateResetToken mints a random single-use token and stores it.
func (s *resetTokenService) GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (string, time.Time, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, fmt.Errorf("generating random token: %w", err)
	}
	token := hex.EncodeToString(buf)

	expiresAt := time.Now().UTC().Add(resetTokenDuration)
	if err := s.store.SavePasswordResetToken(ctx, token, userID, email, expiresAt); err != nil {
		return "", time.Time{}, fmt.Errorf("saving reset token: %w", err)
	}
	return token, expiresAt, nil
}

// ValidateResetToken returns the identity the token was issued for. Used
// and expired tokens are rejected.
func (s *resetTokenService) ValidateResetToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	row, err := s.store.GetPasswordResetToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("loading reset token: %w", err)
	}
	if row == nil || row.Used || row.ExpiresAt.Before(time.Now().UTC()) {
		return nil, fmt.Errorf("invalid or expired reset token")
	}
	return &adapter.TokenClaims{UserID: row.UserID, Email: row.Email}, nil
}

// ConsumeResetToken marks the token as used.
func (s *resetTokenService) ConsumeResetToken(ctx context.Context, token string) error {
	return s.store.InvalidatePasswordResetToken(ctx, token)
}
