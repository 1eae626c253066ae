package error

import "errors"

// Habit domain errors.
var (
	// ErrHabitNotFound is returned when a habit is not found in the system.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrNotAuthorizedToModifyHabit is returned when user is not authorized to modify a habit.
	ErrNotAuthorizedToModifyHabit = errors.New("not authorized to modify habit")

	// ErrInvalidFrequency is returned when the habit frequency is invalid.
	ErrInvalidFrequency = errors.New("invalid habit frequency")

	// ErrHabitAlreadyCompleted is returned when completing a habit already completed this period.
	ErrHabitAlreadyCompleted = errors.New("habit already completed for this period")

	// ErrHabitNotCompleted is returned when uncompleting a habit not completed this period.
	ErrHabitNotCompleted = errors.New("habit is not completed for this period")

	// ErrHabitNameRequired is returned when the habit name is empty.
	ErrHabitNameRequired = errors.New("habit name is required")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HAB-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeHabitNotFound        HabitErrorCode = "HAB-010001"
	ErrCodeNotAuthorizedHabit   HabitErrorCode = "HAB-010002"
	ErrCodeInvalidFrequency     HabitErrorCode = "HAB-010003"
	ErrCodeHabitNameRequired    HabitErrorCode = "HAB-010004"
	ErrCodeMissingHabitFields   HabitErrorCode = "HAB-010005"

	// Toggle errors (02XXXX)
	ErrCodeHabitAlreadyCompleted HabitErrorCode = "HAB-020001"
	ErrCodeHabitNotCompleted     HabitErrorCode = "HAB-020002"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
