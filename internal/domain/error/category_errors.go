package error

import "errors"

// Category sentinel errors.
var (
	ErrCategoryNotFound              = errors.New("category not found")
	ErrCategoryNameRequired          = errors.New("category name is required")
	ErrInvalidCategoryType           = errors.New("invalid category type")
	ErrNotAuthorizedToModifyCategory = errors.New("not authorized to modify category")
)

// CategoryErrorCode is the machine-readable code returned to API clients.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameRequired  CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010003"
	ErrCodeNotAuthorizedCategory CategoryErrorCode = "CAT-010004"
)

// CategoryError carries a code and message alongside the wrapped cause.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError builds a CategoryError wrapping err.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{Code: code, Message: message, Err: err}
}
