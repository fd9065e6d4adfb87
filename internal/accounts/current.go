package accounts

import (
	"github.com/shopspring/decimal"

	"github.com/tellerbook/teller/internal/model"
)

var _ Account = (*Current)(nil)

// Current is a transactional account with no passbook.
type Current struct {
	base
}

// NewCurrent creates an empty current account.
func NewCurrent(number string) (*Current, error) {
	b, err := newBase(number)
	if err != nil {
		return nil, err
	}
	return &Current{base: b}, nil
}

// Kind returns model.AccountKindCurrent.
func (c *Current) Kind() model.AccountKind {
	return model.AccountKindCurrent
}

// Deposit adds amount to the balance.
func (c *Current) Deposit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	c.credit(amount)
	return nil
}

// Withdraw removes amount from the balance if funds allow.
func (c *Current) Withdraw(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	return c.debit(amount)
}

// Describe returns the account details.
func (c *Current) Describe() Details {
	return c.details(model.AccountKindCurrent)
}
