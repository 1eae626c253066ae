package error

import "errors"

// Shopping list domain errors.
var (
	// ErrShoppingListNotFound is returned when a shopping list is not found.
	ErrShoppingListNotFound = errors.New("shopping list not found")

	// ErrShoppingItemNotFound is returned when a shopping item is not found.
	ErrShoppingItemNotFound = errors.New("shopping item not found")

	// ErrNotAuthorizedToModifyShopping is returned when user is not authorized to modify a list or item.
	ErrNotAuthorizedToModifyShopping = errors.New("not authorized to modify shopping list")

	// ErrItemAlreadyPurchased is returned when purchasing an already-purchased item.
	ErrItemAlreadyPurchased = errors.New("shopping item already purchased")

	// ErrItemNotPurchased is returned when reverting an item that was never purchased.
	ErrItemNotPurchased = errors.New("shopping item is not purchased")

	// ErrInvalidItemAmount is returned when the estimated or final amount is invalid.
	ErrInvalidItemAmount = errors.New("shopping item amount must be positive")

	// ErrShoppingNameRequired is returned when a list or item name is empty.
	ErrShoppingNameRequired = errors.New("name is required")
)

// ShoppingErrorCode defines error codes for shopping errors.
// Format: SHO-XXYYYY where XX is category and YYYY is specific error.
type ShoppingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeShoppingListNotFound  ShoppingErrorCode = "SHO-010001"
	ErrCodeShoppingItemNotFound  ShoppingErrorCode = "SHO-010002"
	ErrCodeNotAuthorizedShopping ShoppingErrorCode = "SHO-010003"
	ErrCodeInvalidItemAmount     ShoppingErrorCode = "SHO-010004"
	ErrCodeMissingShoppingFields ShoppingErrorCode = "SHO-010005"

	// Transition errors (02XXXX)
	ErrCodeItemAlreadyPurchased ShoppingErrorCode = "SHO-020001"
	ErrCodeItemNotPurchased     ShoppingErrorCode = "SHO-020002"
)

// ShoppingError represents a shopping error with code and message.
type ShoppingError struct {
	Code    ShoppingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ShoppingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ShoppingError) Unwrap() error {
	return e.Err
}

// NewShoppingError creates a new ShoppingError with the given code and message.
func NewShoppingError(code ShoppingErrorCode, message string, err error) *ShoppingError {
	return &ShoppingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
