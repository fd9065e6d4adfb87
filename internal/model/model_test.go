package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAccountKind(t *testing.T) {
	tests := []struct {
		input string
		want  AccountKind
		ok    bool
	}{
		{"savings", AccountKindSavings, true},
		{"current", AccountKindCurrent, true},
		{"fixed", AccountKindFixed, true},
		{"Savings", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseAccountKind(tt.input)
		assert.Equal(t, tt.ok, ok, "ParseAccountKind(%q)", tt.input)
		assert.Equal(t, tt.want, got, "ParseAccountKind(%q)", tt.input)
	}
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "Savings", AccountKindSavings.Title())
	assert.Equal(t, "Fixed", AccountKindFixed.Title())
	assert.Equal(t, "Deposit", TransactionDeposit.Title())
	assert.Equal(t, "Withdrawal", TransactionWithdrawal.Title())
}
