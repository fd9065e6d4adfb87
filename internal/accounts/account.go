package accounts

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tellerbook/teller/internal/id"
	"github.com/tellerbook/teller/internal/model"
)

// Account is the capability set shared by every account kind.
type Account interface {
	Number() string
	Kind() model.AccountKind
	Balance() decimal.Decimal
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Describe() Details
}

// Resolver looks up accounts by number. Savings accounts hold only the numbers
// of their linked accounts and resolve them through it.
type Resolver interface {
	Lookup(number string) (Account, bool)
}

// Details is a point-in-time view of one account.
type Details struct {
	Kind    model.AccountKind
	Number  string
	Balance decimal.Decimal
}

// Summary is an account's details plus, for savings, its holder, linked
// accounts and the combined balance.
type Summary struct {
	Account Details
	Holder  string
	Current *Details
	Fixed   *Details
	Total   decimal.Decimal
}

// Summarize builds the Summary of a. Non-savings accounts total their own balance.
func Summarize(a Account, r Resolver) Summary {
	if s, ok := a.(*Savings); ok {
		return s.Summary(r)
	}
	return Summary{Account: a.Describe(), Total: a.Balance()}
}

// base carries the identity and balance shared by every kind.
type base struct {
	number  string
	balance decimal.Decimal
}

func newBase(number string) (base, error) {
	if err := id.ValidateAccountNumber(number); err != nil {
		return base{}, err
	}
	return base{number: number, balance: decimal.Zero}, nil
}

// Number returns the account number.
func (b *base) Number() string {
	return b.number
}

// Balance returns the current balance.
func (b *base) Balance() decimal.Decimal {
	return b.balance
}

func (b *base) credit(amount decimal.Decimal) {
	b.balance = b.balance.Add(amount)
}

// debit subtracts amount, leaving the balance untouched if it would go negative.
func (b *base) debit(amount decimal.Decimal) error {
	if b.balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientFunds, b.balance.StringFixed(2), amount.StringFixed(2))
	}
	b.balance = b.balance.Sub(amount)
	return nil
}

func (b *base) details(kind model.AccountKind) Details {
	return Details{Kind: kind, Number: b.number, Balance: b.balance}
}
