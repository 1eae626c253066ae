package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// forgotPasswordMessage is returned regardless of whether the email exists,
// so the endpoint cannot be used for account enumeration.
const forgotPasswordMessage = "If an account with that email exists, we have sent a password reset link"

// ForgotPasswordInput represents the input for a forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of a forgot password request.
type ForgotPasswordOutput struct {
	Message string
}

// ForgotPasswordUseCase handles forgot password logic.
type ForgotPasswordUseCase struct {
	userRepo          adapter.UserRepository
	resetTokenService adapter.ResetTokenService
	emailQueue        adapter.EmailQueueRepository
	appBaseURL        string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	resetTokenService adapter.ResetTokenService,
	emailQueue adapter.EmailQueueRepository,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:          userRepo,
		resetTokenService: resetTokenService,
		emailQueue:        emailQueue,
		appBaseURL:        appBaseURL,
	}
}

// Execute generates a reset token and queues the reset email. The response is
// identical whether or not the account exists.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		slog.Debug("Forgot password requested for non-existent email", "email", input.Email)
		return &ForgotPasswordOutput{Message: forgotPasswordMessage}, nil
	}

	token, expiresAt, err := uc.resetTokenService.GenerateResetToken(ctx, user.ID, user.Email)
	if err != nil {
		slog.Error("Failed to generate reset token", "error", err, "userID", user.ID)
		return &ForgotPasswordOutput{Message: forgotPasswordMessage}, nil
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, token)

	if uc.emailQueue != nil {
		job := entity.NewEmailJob(
			entity.TemplatePasswordReset,
			user.Email,
			user.Name,
			"Reset your LifeLedger password",
			map[string]interface{}{
				"name":      user.Name,
				"resetURL":  resetURL,
				"expiresAt": expiresAt.Format("15:04 MST"),
			},
		)
		if err := uc.emailQueue.Create(ctx, job); err != nil {
			slog.Error("Failed to queue password reset email", "error", err, "userID", user.ID)
		} else {
			slog.Info("Password reset email queued", "userID", user.ID)
		}
	} else {
		slog.Info("Password reset token generated (email queue not configured)",
			"userID", user.ID,
			"resetURL", resetURL,
		)
	}

	return &ForgotPasswordOutput{Message: forgotPasswordMessage}, nil
}
