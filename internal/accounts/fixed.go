package accounts

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tellerbook/teller/internal/model"
)

var _ Account = (*Fixed)(nil)

// Fixed is a term deposit. Its balance is set at creation and never changes.
type Fixed struct {
	base
}

// NewFixed creates a fixed account holding amount.
func NewFixed(number string, amount decimal.Decimal) (*Fixed, error) {
	b, err := newBase(number)
	if err != nil {
		return nil, err
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	b.balance = amount
	return &Fixed{base: b}, nil
}

// Kind returns model.AccountKindFixed.
func (f *Fixed) Kind() model.AccountKind {
	return model.AccountKindFixed
}

// Deposit always fails.
func (f *Fixed) Deposit(decimal.Decimal) error {
	return fmt.Errorf("%w: deposits not allowed in fixed account", ErrOperationNotPermitted)
}

// Withdraw always fails.
func (f *Fixed) Withdraw(decimal.Decimal) error {
	return fmt.Errorf("%w: withdrawals not allowed in fixed account", ErrOperationNotPermitted)
}

// Describe returns the account details.
func (f *Fixed) Describe() Details {
	return f.details(model.AccountKindFixed)
}
