package passbook

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerbook/teller/internal/model"
)

func deposit(seq int) model.Transaction {
	return model.Transaction{
		ID:     fmt.Sprintf("tx-%d", seq),
		Seq:    seq,
		Kind:   model.TransactionDeposit,
		Amount: decimal.NewFromInt(int64(seq)),
	}
}

func seqs(l *Log) []int {
	var out []int
	for tx := range l.All() {
		out = append(out, tx.Seq)
	}
	return out
}

func fill(l *Log, n int) *Log {
	for i := 1; i <= n; i++ {
		l.Append(deposit(i))
	}
	return l
}

func TestNew_DefaultCapacity(t *testing.T) {
	assert.Len(t, fill(New(0), 20).Transactions(), DefaultCapacity)
	assert.Len(t, fill(New(-3), 20).Transactions(), DefaultCapacity)
	assert.Len(t, fill(New(4), 20).Transactions(), 4)
}

func TestAppend_BelowCapacity(t *testing.T) {
	l := New(10)
	for i := 1; i <= 3; i++ {
		l.Append(deposit(i))
	}
	assert.Len(t, l.Transactions(), 3)
	assert.Equal(t, []int{1, 2, 3}, seqs(l))
}

func TestAppend_EvictsOldest(t *testing.T) {
	l := New(10)
	for i := 1; i <= 11; i++ {
		l.Append(deposit(i))
	}
	require.Len(t, l.Transactions(), 10)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, seqs(l))
}

func TestAppend_WrapsManyTimes(t *testing.T) {
	l := New(3)
	for i := 1; i <= 100; i++ {
		l.Append(deposit(i))
		assert.LessOrEqual(t, len(l.Transactions()), 3)
	}
	assert.Equal(t, []int{98, 99, 100}, seqs(l))
}

func TestAll_Empty(t *testing.T) {
	l := New(10)
	assert.Empty(t, seqs(l))
	assert.Empty(t, l.Transactions())
}

func TestAll_Restartable(t *testing.T) {
	l := New(2)
	l.Append(deposit(1))
	seq := l.All()

	var first []int
	for tx := range seq {
		first = append(first, tx.Seq)
	}
	assert.Equal(t, []int{1}, first)

	// The same sequence reflects later appends.
	l.Append(deposit(2))
	l.Append(deposit(3))
	var second []int
	for tx := range seq {
		second = append(second, tx.Seq)
	}
	assert.Equal(t, []int{2, 3}, second)
}

func TestAll_EarlyBreak(t *testing.T) {
	l := New(5)
	for i := 1; i <= 5; i++ {
		l.Append(deposit(i))
	}
	var got []int
	for tx := range l.All() {
		if tx.Seq == 3 {
			break
		}
		got = append(got, tx.Seq)
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestTransactions_IsCopy(t *testing.T) {
	l := New(3)
	l.Append(deposit(1))

	txs := l.Transactions()
	txs[0].Seq = 99

	assert.Equal(t, []int{1}, seqs(l))
}
