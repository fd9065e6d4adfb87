package session

import (
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tellerbook/teller/internal/accounts"
	"github.com/tellerbook/teller/internal/id"
	"github.com/tellerbook/teller/internal/model"
	"github.com/tellerbook/teller/internal/passbook"
)

// Session holds the accounts of one customer for the lifetime of a run and
// enforces the one-account-per-kind rule. Every operation runs under mu.
type Session struct {
	mu       sync.Mutex
	logger   *zap.Logger
	now      func() time.Time
	capacity int

	reg     registry
	savings *accounts.Savings
	current *accounts.Current
	fixed   *accounts.Fixed
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithClock sets the time source used to stamp transactions.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithPassbookCapacity sets how many transactions the savings passbook keeps.
func WithPassbookCapacity(n int) Option {
	return func(s *Session) { s.capacity = n }
}

// New creates an empty Session.
func New(opts ...Option) *Session {
	s := &Session{
		logger:   zap.NewNop(),
		now:      time.Now,
		capacity: passbook.DefaultCapacity,
		reg:      newRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TransferResult holds both sides of a completed transfer.
type TransferResult struct {
	From accounts.Details
	To   accounts.Details
}

// Passbook is the savings account's recent history.
type Passbook struct {
	Number       string
	Holder       string
	Balance      decimal.Decimal
	Transactions []model.Transaction // oldest first
}

// OpenSavings opens the session's savings account. It must be the first account.
func (s *Session) OpenSavings(number, holder string) (accounts.Details, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.savings != nil {
		return accounts.Details{}, s.reject("open savings", fmt.Errorf("%w: savings account %s is already open", ErrAlreadyExists, s.savings.Number()))
	}

	sv, err := accounts.NewSavings(number, holder,
		accounts.WithPassbookCapacity(s.capacity),
		accounts.WithClock(s.now),
	)
	if err != nil {
		return accounts.Details{}, s.reject("open savings", err, zap.String("account", number))
	}
	if err := s.reg.add(sv); err != nil {
		return accounts.Details{}, s.reject("open savings", err, zap.String("account", number))
	}
	s.savings = sv

	s.logger.Info("savings account opened", zap.String("account", number), zap.String("holder", sv.Holder()))
	return sv.Describe(), nil
}

// OpenCurrent opens the current account and links it to savings.
func (s *Session) OpenCurrent(number string) (accounts.Details, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sv, err := s.requireSavings()
	if err != nil {
		return accounts.Details{}, s.reject("open current", err)
	}
	if s.current != nil {
		return accounts.Details{}, s.reject("open current", fmt.Errorf("%w: current account %s is already open", ErrAlreadyExists, s.current.Number()))
	}

	c, err := accounts.NewCurrent(number)
	if err != nil {
		return accounts.Details{}, s.reject("open current", err, zap.String("account", number))
	}
	if err := s.reg.taken(number); err != nil {
		return accounts.Details{}, s.reject("open current", err, zap.String("account", number))
	}
	if err := sv.LinkCurrent(number); err != nil {
		return accounts.Details{}, s.reject("open current", err, zap.String("account", number))
	}
	if err := s.reg.add(c); err != nil {
		return accounts.Details{}, s.reject("open current", err, zap.String("account", number))
	}
	s.current = c

	s.logger.Info("current account opened", zap.String("account", number), zap.String("savings", sv.Number()))
	return c.Describe(), nil
}

// OpenFixed funds a new fixed account with amount withdrawn from savings and
// links it. If savings cannot cover amount nothing is created.
func (s *Session) OpenFixed(number string, amount decimal.Decimal) (accounts.Details, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := []zap.Field{zap.String("account", number), zap.Stringer("amount", amount)}

	sv, err := s.requireSavings()
	if err != nil {
		return accounts.Details{}, s.reject("open fixed", err, fields...)
	}
	if s.fixed != nil {
		return accounts.Details{}, s.reject("open fixed", fmt.Errorf("%w: fixed account %s is already open", ErrAlreadyExists, s.fixed.Number()), fields...)
	}

	f, err := accounts.NewFixed(number, amount)
	if err != nil {
		return accounts.Details{}, s.reject("open fixed", err, fields...)
	}
	if err := s.reg.taken(number); err != nil {
		return accounts.Details{}, s.reject("open fixed", err, fields...)
	}
	if err := sv.Withdraw(amount); err != nil {
		return accounts.Details{}, s.reject("open fixed", err, fields...)
	}
	if err := sv.LinkFixed(number); err != nil {
		return accounts.Details{}, s.reject("open fixed", err, fields...)
	}
	if err := s.reg.add(f); err != nil {
		return accounts.Details{}, s.reject("open fixed", err, fields...)
	}
	s.fixed = f

	s.logger.Info("fixed account opened", append(fields, zap.String("savings", sv.Number()))...)
	return f.Describe(), nil
}

// Deposit credits the referenced account.
func (s *Session) Deposit(ref string, amount decimal.Decimal) (accounts.Details, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := []zap.Field{zap.String("account", ref), zap.Stringer("amount", amount)}

	a, err := s.lookup(ref)
	if err != nil {
		return accounts.Details{}, s.reject("deposit", err, fields...)
	}
	if err := a.Deposit(amount); err != nil {
		return accounts.Details{}, s.reject("deposit", err, fields...)
	}

	d := a.Describe()
	s.logger.Info("deposit", append(fields, zap.Stringer("balance", d.Balance))...)
	return d, nil
}

// Withdraw debits the referenced account.
func (s *Session) Withdraw(ref string, amount decimal.Decimal) (accounts.Details, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := []zap.Field{zap.String("account", ref), zap.Stringer("amount", amount)}

	a, err := s.lookup(ref)
	if err != nil {
		return accounts.Details{}, s.reject("withdraw", err, fields...)
	}
	if err := a.Withdraw(amount); err != nil {
		return accounts.Details{}, s.reject("withdraw", err, fields...)
	}

	d := a.Describe()
	s.logger.Info("withdraw", append(fields, zap.Stringer("balance", d.Balance))...)
	return d, nil
}

// Transfer moves amount between the savings account and its linked current
// account, in either direction. Either both sides change or neither does.
func (s *Session) Transfer(from, to string, amount decimal.Decimal) (TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := []zap.Field{zap.String("from", from), zap.String("to", to), zap.Stringer("amount", amount)}

	src, err := s.lookup(from)
	if err != nil {
		return TransferResult{}, s.reject("transfer", err, fields...)
	}
	dst, err := s.lookup(to)
	if err != nil {
		return TransferResult{}, s.reject("transfer", err, fields...)
	}
	if err := s.checkTransfer(src, dst); err != nil {
		return TransferResult{}, s.reject("transfer", err, fields...)
	}
	if err := accounts.ValidateAmount(amount); err != nil {
		return TransferResult{}, s.reject("transfer", err, fields...)
	}
	if src.Balance().LessThan(amount) {
		err := fmt.Errorf("%w: %s balance %s, requested %s", accounts.ErrInsufficientFunds, src.Number(), src.Balance().StringFixed(2), amount.StringFixed(2))
		return TransferResult{}, s.reject("transfer", err, fields...)
	}

	if err := src.Withdraw(amount); err != nil {
		return TransferResult{}, s.reject("transfer", err, fields...)
	}
	if err := dst.Deposit(amount); err != nil {
		// Unreachable for savings/current with a validated amount; put the debit back.
		if rerr := src.Deposit(amount); rerr != nil {
			s.logger.Error("transfer reversal failed", append(fields, zap.Error(rerr))...)
		}
		return TransferResult{}, s.reject("transfer", err, fields...)
	}

	res := TransferResult{From: src.Describe(), To: dst.Describe()}
	s.logger.Info("transfer", fields...)
	return res, nil
}

// checkTransfer allows only savings <-> linked current.
func (s *Session) checkTransfer(src, dst accounts.Account) error {
	if src.Number() == dst.Number() {
		return fmt.Errorf("%w: %s", ErrSameAccount, src.Number())
	}
	if src.Kind() == model.AccountKindFixed || dst.Kind() == model.AccountKindFixed {
		return fmt.Errorf("%w: fixed accounts cannot take part in transfers", accounts.ErrOperationNotPermitted)
	}

	var sv, other accounts.Account
	switch {
	case src.Kind() == model.AccountKindSavings:
		sv, other = src, dst
	case dst.Kind() == model.AccountKindSavings:
		sv, other = dst, src
	default:
		return fmt.Errorf("%w: %s and %s", ErrNotLinked, src.Number(), dst.Number())
	}

	linked, ok := sv.(*accounts.Savings).CurrentNumber()
	if !ok || linked != other.Number() {
		return fmt.Errorf("%w: %s and %s", ErrNotLinked, sv.Number(), other.Number())
	}
	return nil
}

// Describe reports the referenced account. For savings the report includes
// the linked accounts and the combined total.
func (s *Session) Describe(ref string) (accounts.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.lookup(ref)
	if err != nil {
		return accounts.Summary{}, s.reject("describe", err, zap.String("account", ref))
	}
	return accounts.Summarize(a, &s.reg), nil
}

// Passbook returns the savings account's recent transactions.
func (s *Session) Passbook(ref string) (Passbook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sv, err := s.lookupSavings(ref)
	if err != nil {
		return Passbook{}, s.reject("passbook", err, zap.String("account", ref))
	}
	return Passbook{
		Number:       sv.Number(),
		Holder:       sv.Holder(),
		Balance:      sv.Balance(),
		Transactions: sv.Transactions(),
	}, nil
}

// History returns the savings account's recent transactions as a sequence.
// Every iteration reads the passbook afresh.
func (s *Session) History(ref string) (iter.Seq[model.Transaction], error) {
	s.mu.Lock()
	sv, err := s.lookupSavings(ref)
	s.mu.Unlock()
	if err != nil {
		return nil, s.reject("history", err, zap.String("account", ref))
	}

	return func(yield func(model.Transaction) bool) {
		s.mu.Lock()
		txs := sv.Transactions()
		s.mu.Unlock()
		for _, tx := range txs {
			if !yield(tx) {
				return
			}
		}
	}, nil
}

// Resolve maps a kind alias ("savings", "current", "fixed") or an account
// number to the number of an open account.
func (s *Session) Resolve(ref string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.lookup(ref)
	if err != nil {
		return "", err
	}
	return a.Number(), nil
}

// Accounts returns every open account in opening order.
func (s *Session) Accounts() []accounts.Details {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reg.all()
}

func (s *Session) lookup(ref string) (accounts.Account, error) {
	if id.IsAlias(ref) {
		kind, _ := model.ParseAccountKind(ref)
		var a accounts.Account
		switch kind {
		case model.AccountKindSavings:
			if s.savings != nil {
				a = s.savings
			}
		case model.AccountKindCurrent:
			if s.current != nil {
				a = s.current
			}
		case model.AccountKindFixed:
			if s.fixed != nil {
				a = s.fixed
			}
		}
		if a == nil {
			return nil, fmt.Errorf("%w: no %s account", ErrNotFound, kind)
		}
		return a, nil
	}

	a, ok := s.reg.Lookup(ref)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return a, nil
}

func (s *Session) lookupSavings(ref string) (*accounts.Savings, error) {
	a, err := s.lookup(ref)
	if err != nil {
		return nil, err
	}
	sv, ok := a.(*accounts.Savings)
	if !ok {
		return nil, fmt.Errorf("%w: %s account %s has no passbook", accounts.ErrOperationNotPermitted, a.Kind(), a.Number())
	}
	return sv, nil
}

func (s *Session) requireSavings() (*accounts.Savings, error) {
	if s.savings == nil {
		return nil, fmt.Errorf("%w: open a savings account first", ErrNotFound)
	}
	return s.savings, nil
}

func (s *Session) reject(op string, err error, fields ...zap.Field) error {
	s.logger.Debug(op+" rejected", append(fields, zap.Error(err))...)
	return err
}
