package auth

import (
	"context"
	"fmt"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// RefreshTokenInput carries the presented refresh token.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput carries the freshly issued pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenUseCase rotates refresh tokens.
type RefreshTokenUseCase struct {
	tokens adapter.TokenService
}

// NewRefreshTokenUseCase creates the usecase.
func NewRefreshTokenUseCase(tokens adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{tokens: tokens}
}

// Execute invalidates the presented token and issues a fresh pair.
// A token that fails validation yields an unauthorized-mapped error.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	claims, err := uc.tokens.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid refresh token",
			domainerror.ErrInvalidToken,
		)
	}

	if err := uc.tokens.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("invalidating refresh token: %w", err)
	}

	pair, err := uc.tokens.GenerateTokenPair(ctx, claims.UserID, claims.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token pair: %w", err)
	}

	return &RefreshTokenOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
