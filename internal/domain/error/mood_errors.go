package error

import "errors"

// Mood domain errors.
var (
	// ErrMoodEntryNotFound is returned when a mood entry is not found.
	ErrMoodEntryNotFound = errors.New("mood entry not found")

	// ErrInvalidMoodScore is returned when the score is outside [1, 5].
	ErrInvalidMoodScore = errors.New("mood score must be between 1 and 5")

	// ErrNotAuthorizedToModifyMood is returned when user is not authorized to modify a mood entry.
	ErrNotAuthorizedToModifyMood = errors.New("not authorized to modify mood entry")

	// ErrInvalidMoodRange is returned when a listing range is inverted.
	ErrInvalidMoodRange = errors.New("invalid mood date range")
)

// MoodErrorCode defines error codes for mood errors.
// Format: MOO-XXYYYY where XX is category and YYYY is specific error.
type MoodErrorCode string

const (
	ErrCodeMoodEntryNotFound MoodErrorCode = "MOO-010001"
	ErrCodeInvalidMoodScore  MoodErrorCode = "MOO-010002"
	ErrCodeNotAuthorizedMood MoodErrorCode = "MOO-010003"
	ErrCodeInvalidMoodRange  MoodErrorCode = "MOO-010004"
)

// MoodError represents a mood error with code and message.
type MoodError struct {
	Code    MoodErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MoodError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MoodError) Unwrap() error {
	return e.Err
}

// NewMoodError creates a new MoodError with the given code and message.
func NewMoodError(code MoodErrorCode, message string, err error) *MoodError {
	return &MoodError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
