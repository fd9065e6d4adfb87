package session

import "errors"

var (
	// ErrAlreadyExists means an account of that kind, or with that number, is already open.
	ErrAlreadyExists = errors.New("account already exists")

	// ErrNotFound means the referenced account was never opened.
	ErrNotFound = errors.New("account not found")

	// ErrSameAccount means a transfer names the same account on both sides.
	ErrSameAccount = errors.New("source and destination are the same account")

	// ErrNotLinked means a transfer is between accounts that are not linked.
	ErrNotLinked = errors.New("accounts are not linked")
)
