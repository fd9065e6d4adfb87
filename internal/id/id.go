package id

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxAccountNumberLen is the longest accepted account number (the IBAN maximum).
const MaxAccountNumberLen = 34

// ErrInvalidAccountNumber is returned for malformed or reserved account numbers.
var ErrInvalidAccountNumber = errors.New("invalid account number")

// reserved holds the aliases the shell uses to address accounts by kind.
var reserved = []string{"savings", "current", "fixed"}

// NewTransactionID returns a fresh transaction ID.
func NewTransactionID() string {
	return uuid.NewString()
}

// ValidateAccountNumber checks that number is 1-34 characters of [A-Za-z0-9-]
// and does not collide with a kind alias.
func ValidateAccountNumber(number string) error {
	if number == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAccountNumber)
	}
	if len(number) > MaxAccountNumberLen {
		return fmt.Errorf("%w: %q longer than %d characters", ErrInvalidAccountNumber, number, MaxAccountNumberLen)
	}
	for _, r := range number {
		if !isAccountRune(r) {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidAccountNumber, number, r)
		}
	}
	for _, word := range reserved {
		if strings.EqualFold(number, word) {
			return fmt.Errorf("%w: %q is reserved", ErrInvalidAccountNumber, number)
		}
	}
	return nil
}

// IsAlias reports whether s names an account kind rather than a number.
func IsAlias(s string) bool {
	for _, word := range reserved {
		if s == word {
			return true
		}
	}
	return false
}

func isAccountRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		return true
	}
	return false
}
