package passbook

import (
	"iter"
	"slices"

	"github.com/tellerbook/teller/internal/model"
)

// DefaultCapacity is the number of transactions a passbook shows.
const DefaultCapacity = 10

// Log is a fixed-capacity ring of the most recent transactions on a savings account.
// When full, appending drops the oldest entry.
type Log struct {
	buf   []model.Transaction
	start int // index of the oldest entry
	n     int
}

// New creates an empty Log. A non-positive capacity means DefaultCapacity.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{buf: make([]model.Transaction, capacity)}
}

// Append records tx as the newest entry, evicting the oldest if the log is full.
func (l *Log) Append(tx model.Transaction) {
	if l.n < len(l.buf) {
		l.buf[(l.start+l.n)%len(l.buf)] = tx
		l.n++
		return
	}
	l.buf[l.start] = tx
	l.start = (l.start + 1) % len(l.buf)
}

// All yields the held transactions oldest first. Each iteration reads the
// log's state at that time, so the sequence can be ranged over repeatedly.
func (l *Log) All() iter.Seq[model.Transaction] {
	return func(yield func(model.Transaction) bool) {
		for i := 0; i < l.n; i++ {
			if !yield(l.buf[(l.start+i)%len(l.buf)]) {
				return
			}
		}
	}
}

// Transactions returns a copy of the held transactions, oldest first.
func (l *Log) Transactions() []model.Transaction {
	return slices.Collect(l.All())
}
