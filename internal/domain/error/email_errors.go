package error

import "errors"

// Email sentinel errors.
var (
	ErrEmailQueueFailed    = errors.New("failed to queue email")
	ErrEmailSendFailed     = errors.New("failed to send email")
	ErrEmailTemplateRender = errors.New("failed to render email template")
)

// EmailErrorCode is the machine-readable code attached to queue rows.
type EmailErrorCode string

const (
	ErrCodeEmailQueueFailed      EmailErrorCode = "EML-010001"
	ErrCodeEmailTemplateRender   EmailErrorCode = "EML-010002"
	ErrCodeTransientEmailFailure EmailErrorCode = "EML-020001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-020002"
)

// EmailError carries a code and message alongside the wrapped cause.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError builds an EmailError wrapping err.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{Code: code, Message: message, Err: err}
}
