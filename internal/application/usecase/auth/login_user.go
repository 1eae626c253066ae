package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// LoginUserInput carries the login credentials.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput carries the issued tokens and the authenticated user.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// LoginUserUseCase authenticates a user by email and password.
type LoginUserUseCase struct {
	users     adapter.UserRepository
	passwords adapter.PasswordService
	tokens    adapter.TokenService
}

// NewLoginUserUseCase creates the usecase.
func NewLoginUserUseCase(
	users adapter.UserRepository,
	passwords adapter.PasswordService,
	tokens adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{users: users, passwords: passwords, tokens: tokens}
}

// Execute authenticates the credentials. An unknown email and a wrong
// password produce the same error so the response leaks nothing.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	invalidCredentials := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid credentials",
		domainerror.ErrInvalidCredentials,
	)

	email := strings.ToLower(strings.TrimSpace(input.Email))
	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, invalidCredentials
	}

	if err := uc.passwords.Compare(input.Password, user.PasswordHash); err != nil {
		return nil, invalidCredentials
	}

	pair, err := uc.tokens.GenerateTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token pair: %w", err)
	}

	return &LoginUserOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}
