package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the direction of a passbook transaction.
type TransactionKind string

const (
	TransactionDeposit    TransactionKind = "deposit"
	TransactionWithdrawal TransactionKind = "withdrawal"
)

// Title returns the passbook label, e.g. "Deposit".
func (k TransactionKind) Title() string {
	switch k {
	case TransactionDeposit:
		return "Deposit"
	case TransactionWithdrawal:
		return "Withdrawal"
	default:
		return string(k)
	}
}

// Transaction is one immutable passbook line of a savings account.
type Transaction struct {
	ID      string          // uuid
	Seq     int             // 1-based, per savings account
	Kind    TransactionKind
	Amount  decimal.Decimal // always positive
	Balance decimal.Decimal // savings balance after the transaction
	Time    time.Time
}
