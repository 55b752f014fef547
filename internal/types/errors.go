package types

import "fmt"

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Bet validation errors
	ErrInvalidBet        ErrorCode = "INVALID_BET"
	ErrBetTooLow         ErrorCode = "BET_TOO_LOW"
	ErrBetTooHigh        ErrorCode = "BET_TOO_HIGH"
	ErrInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	ErrInvalidNumberBet  ErrorCode = "INVALID_NUMBER_BET"

	// Registration errors
	ErrInvalidName           ErrorCode = "INVALID_NAME"
	ErrInvalidInitialBalance ErrorCode = "INVALID_INITIAL_BALANCE"

	// Ledger errors
	ErrPlayerNotFound  ErrorCode = "PLAYER_NOT_FOUND"
	ErrNegativeBalance ErrorCode = "NEGATIVE_BALANCE"
	ErrUnknownGame     ErrorCode = "UNKNOWN_GAME"

	// System errors
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
)

// CasinoError represents a ledger or game validation error
type CasinoError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *CasinoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *CasinoError) Unwrap() error {
	return e.Err
}

// NewCasinoError creates a new CasinoError
func NewCasinoError(code ErrorCode, message string) *CasinoError {
	return &CasinoError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a CasinoError
func WrapError(code ErrorCode, message string, err error) *CasinoError {
	return &CasinoError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCasinoError checks if an error is a CasinoError and has a specific code
func IsCasinoError(err error, code ErrorCode) bool {
	var casinoErr *CasinoError
	if err == nil {
		return false
	}
	if ok := As(err, &casinoErr); !ok {
		return false
	}
	return casinoErr.Code == code
}

// As is a helper function to safely type assert an error to a CasinoError
func As(err error, target **CasinoError) bool {
	if target == nil {
		return false
	}
	if casinoErr, ok := err.(*CasinoError); ok {
		*target = casinoErr
		return true
	}
	return false
}

// CodeOf returns the code carried by err, or ErrInternalError when err is
// not a CasinoError.
func CodeOf(err error) ErrorCode {
	var casinoErr *CasinoError
	if As(err, &casinoErr) {
		return casinoErr.Code
	}
	return ErrInternalError
}
