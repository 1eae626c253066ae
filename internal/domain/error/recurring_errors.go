package error

import "errors"

// Recurring item domain errors.
var (
	// ErrRecurringItemNotFound is returned when a recurring item is not found.
	ErrRecurringItemNotFound = errors.New("recurring item not found")

	// ErrNotAuthorizedToModifyRecurringItem is returned when user is not authorized to modify a recurring item.
	ErrNotAuthorizedToModifyRecurringItem = errors.New("not authorized to modify recurring item")

	// ErrInvalidDayOfMonth is returned when day of month is outside [1, 31].
	ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 31")

	// ErrInvalidRecurringAmount is returned when the amount is zero or negative.
	ErrInvalidRecurringAmount = errors.New("recurring amount must be positive")

	// ErrInvalidActiveMonth is returned when an active month is outside [1, 12].
	ErrInvalidActiveMonth = errors.New("active months must be between 1 and 12")

	// ErrRecurringNameRequired is returned when the recurring item name is empty.
	ErrRecurringNameRequired = errors.New("recurring item name is required")

	// ErrInvalidRecurringType is returned when the item type is neither expense nor income.
	ErrInvalidRecurringType = errors.New("invalid recurring item type")

	// ErrAlreadySettled is returned when settling an item already settled for the month.
	ErrAlreadySettled = errors.New("recurring item already settled for this month")

	// ErrNotSettled is returned when reverting an item with no settled month.
	ErrNotSettled = errors.New("recurring item is not settled")

	// ErrItemInactiveForMonth is returned when settling an item outside its active months.
	ErrItemInactiveForMonth = errors.New("recurring item is not active for this month")

	// ErrSettleInProgress is returned when a concurrent settle or revert holds the item lock.
	ErrSettleInProgress = errors.New("another operation on this recurring item is in progress")
)

// RecurringErrorCode defines error codes for recurring item errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRecurringItemNotFound  RecurringErrorCode = "REC-010001"
	ErrCodeNotAuthorizedRecurring RecurringErrorCode = "REC-010002"
	ErrCodeInvalidDayOfMonth      RecurringErrorCode = "REC-010003"
	ErrCodeInvalidRecurringAmount RecurringErrorCode = "REC-010004"
	ErrCodeInvalidActiveMonth     RecurringErrorCode = "REC-010005"
	ErrCodeInvalidMonthKey        RecurringErrorCode = "REC-010006"
	ErrCodeMissingRecurringFields RecurringErrorCode = "REC-010007"

	// Transition errors (02XXXX)
	ErrCodeAlreadySettled       RecurringErrorCode = "REC-020001"
	ErrCodeNotSettled           RecurringErrorCode = "REC-020002"
	ErrCodeItemInactiveForMonth RecurringErrorCode = "REC-020003"
	ErrCodeSettleInProgress     RecurringErrorCode = "REC-020004"
)

// RecurringError represents a recurring item error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
