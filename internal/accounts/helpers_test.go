package accounts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// mockResolver implements Resolver for testing.
type mockResolver struct {
	byNumber map[string]Account
}

func (m *mockResolver) Lookup(number string) (Account, bool) {
	a, ok := m.byNumber[number]
	return a, ok
}

func newMockResolver(accts ...Account) *mockResolver {
	m := &mockResolver{byNumber: make(map[string]Account)}
	for _, a := range accts {
		m.byNumber[a.Number()] = a
	}
	return m
}

func newSavings(t *testing.T, opening string) *Savings {
	t.Helper()
	s, err := NewSavings("S1", "Alice")
	require.NoError(t, err)
	if opening != "" {
		require.NoError(t, s.Deposit(dec(opening)))
	}
	return s
}
