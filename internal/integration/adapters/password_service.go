// Package adapters implements the application-layer service interfaces.
package adapters

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/lifeledger/backend/internal/application/adapter"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
)

type passwordService struct{}

// NewPasswordService creates a bcrypt-backed password service.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{}
}

func (s *passwordService) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *passwordService) Compare(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidateStrength enforces the minimum password policy.
func (s *passwordService) ValidateStrength(password string) error {
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 8 characters long")
	}
	return nil
}
