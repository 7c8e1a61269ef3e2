package atm

import "errors"

var (
	ErrNotFound             = errors.New("account not found")
	ErrLocked               = errors.New("account is locked")
	ErrInvalidPin           = errors.New("invalid PIN")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrPerTransactionLimit  = errors.New("amount exceeds the per-transaction withdrawal limit")
	ErrDailyLimit           = errors.New("amount exceeds the daily withdrawal limit")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrDuplicateAccount     = errors.New("account already exists")
	ErrInvalidAccountID     = errors.New("account number must be 6 digits")
	ErrNotLocked            = errors.New("account is not locked")
	ErrCancelled            = errors.New("operation cancelled")
	ErrSessionActive        = errors.New("another session is still open")
	ErrSessionClosed        = errors.New("session is closed")
)
