package accounts

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tellerbook/teller/internal/id"
	"github.com/tellerbook/teller/internal/model"
	"github.com/tellerbook/teller/internal/passbook"
)

var _ Account = (*Savings)(nil)

// Savings is the customer's primary account. It keeps a passbook of its own
// deposits and withdrawals and links, by number, to at most one current and
// one fixed account.
type Savings struct {
	base
	holder  string
	log     *passbook.Log
	seq     int
	current string
	fixed   string
	now     func() time.Time
}

// SavingsOption configures a Savings account.
type SavingsOption func(*Savings)

// WithPassbookCapacity sets how many transactions the passbook keeps.
func WithPassbookCapacity(n int) SavingsOption {
	return func(s *Savings) { s.log = passbook.New(n) }
}

// WithClock sets the time source used to stamp transactions.
func WithClock(now func() time.Time) SavingsOption {
	return func(s *Savings) { s.now = now }
}

// NewSavings creates an empty savings account.
func NewSavings(number, holder string, opts ...SavingsOption) (*Savings, error) {
	b, err := newBase(number)
	if err != nil {
		return nil, err
	}
	holder = strings.TrimSpace(holder)
	if holder == "" {
		return nil, ErrInvalidHolder
	}

	s := &Savings{
		base:   b,
		holder: holder,
		log:    passbook.New(passbook.DefaultCapacity),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Kind returns model.AccountKindSavings.
func (s *Savings) Kind() model.AccountKind {
	return model.AccountKindSavings
}

// Holder returns the account holder's name.
func (s *Savings) Holder() string {
	return s.holder
}

// Deposit adds amount to the balance and records it in the passbook.
func (s *Savings) Deposit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	s.credit(amount)
	s.record(model.TransactionDeposit, amount)
	return nil
}

// Withdraw removes amount if funds allow and records it in the passbook.
// On failure neither the balance nor the passbook changes.
func (s *Savings) Withdraw(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if err := s.debit(amount); err != nil {
		return err
	}
	s.record(model.TransactionWithdrawal, amount)
	return nil
}

func (s *Savings) record(kind model.TransactionKind, amount decimal.Decimal) {
	s.seq++
	s.log.Append(model.Transaction{
		ID:      id.NewTransactionID(),
		Seq:     s.seq,
		Kind:    kind,
		Amount:  amount,
		Balance: s.balance,
		Time:    s.now(),
	})
}

// History yields the passbook oldest first.
func (s *Savings) History() iter.Seq[model.Transaction] {
	return s.log.All()
}

// Transactions returns a copy of the passbook, oldest first.
func (s *Savings) Transactions() []model.Transaction {
	return s.log.Transactions()
}

// LinkCurrent links the current account with the given number.
func (s *Savings) LinkCurrent(number string) error {
	return link(&s.current, number, model.AccountKindCurrent)
}

// LinkFixed links the fixed account with the given number.
func (s *Savings) LinkFixed(number string) error {
	return link(&s.fixed, number, model.AccountKindFixed)
}

func link(slot *string, number string, kind model.AccountKind) error {
	if *slot != "" && *slot != number {
		return fmt.Errorf("%w: %s account %s already linked", ErrAlreadyLinked, kind, *slot)
	}
	*slot = number
	return nil
}

// CurrentNumber returns the linked current account number, if any.
func (s *Savings) CurrentNumber() (string, bool) {
	return s.current, s.current != ""
}

// FixedNumber returns the linked fixed account number, if any.
func (s *Savings) FixedNumber() (string, bool) {
	return s.fixed, s.fixed != ""
}

// Describe returns the account details.
func (s *Savings) Describe() Details {
	return s.details(model.AccountKindSavings)
}

// Summary describes the account together with its linked accounts. Total is
// computed on every call.
func (s *Savings) Summary(r Resolver) Summary {
	sum := Summary{
		Account: s.Describe(),
		Holder:  s.holder,
		Total:   s.balance,
	}
	if d, ok := resolve(r, s.current); ok {
		sum.Current = &d
		sum.Total = sum.Total.Add(d.Balance)
	}
	if d, ok := resolve(r, s.fixed); ok {
		sum.Fixed = &d
		sum.Total = sum.Total.Add(d.Balance)
	}
	return sum
}

func resolve(r Resolver, number string) (Details, bool) {
	if number == "" || r == nil {
		return Details{}, false
	}
	a, ok := r.Lookup(number)
	if !ok {
		return Details{}, false
	}
	return a.Describe(), true
}
