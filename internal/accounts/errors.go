package accounts

import "errors"

var (
	// ErrInsufficientFunds means a withdrawal or transfer exceeds the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrOperationNotPermitted means the account kind does not support the operation.
	ErrOperationNotPermitted = errors.New("operation not permitted")

	// ErrInvalidAmount means an amount is not positive or has sub-cent precision.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAlreadyLinked means a savings account already links a different account of that kind.
	ErrAlreadyLinked = errors.New("account already linked")

	// ErrInvalidHolder means the savings account holder name is blank.
	ErrInvalidHolder = errors.New("invalid account holder")
)
