package accounts

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces is the finest precision an amount may carry.
const MaxDecimalPlaces = 2

// ValidateAmount checks that amount is positive with at most MaxDecimalPlaces decimals.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidAmount, amount)
	}
	if !amount.Equal(amount.Round(MaxDecimalPlaces)) {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, amount, MaxDecimalPlaces)
	}
	return nil
}
