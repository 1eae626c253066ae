package error

import "errors"

// Transaction sentinel errors.
var (
	ErrTransactionNotFound              = errors.New("transaction not found")
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")
	ErrInvalidTransactionType           = errors.New("invalid transaction type")
	ErrInvalidTransactionAmount         = errors.New("invalid transaction amount")
	ErrInvalidBudgetFocus               = errors.New("invalid budget focus")
	ErrCategoryNotFoundForTransaction   = errors.New("category not found")
	ErrCategoryNotOwnedByUser           = errors.New("category does not belong to user")
	ErrDescriptionTooLong               = errors.New("description too long")
)

// TransactionErrorCode is the machine-readable code returned to API clients.
type TransactionErrorCode string

const (
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidBudgetFocus       TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010004"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-010005"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010006"
	ErrCodeTxnCategoryNotOwned      TransactionErrorCode = "TXN-010007"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010008"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010009"
)

// TransactionError carries a code and message alongside the wrapped cause.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError builds a TransactionError wrapping err.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{Code: code, Message: message, Err: err}
}
