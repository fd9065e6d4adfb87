package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerbook/teller/internal/model"
)

func TestCurrent_DepositWithdraw(t *testing.T) {
	c, err := NewCurrent("C1")
	require.NoError(t, err)
	assert.Equal(t, model.AccountKindCurrent, c.Kind())

	require.NoError(t, c.Deposit(dec("80")))
	require.NoError(t, c.Withdraw(dec("30")))
	assert.Equal(t, "50.00", c.Balance().StringFixed(2))

	err = c.Withdraw(dec("50.01"))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, "50.00", c.Balance().StringFixed(2))
}

func TestCurrent_RoundTrip(t *testing.T) {
	c, err := NewCurrent("C1")
	require.NoError(t, err)
	require.NoError(t, c.Deposit(dec("10")))

	require.NoError(t, c.Deposit(dec("0.99")))
	require.NoError(t, c.Withdraw(dec("0.99")))
	assert.True(t, c.Balance().Equal(dec("10")))
}

func TestCurrent_Describe(t *testing.T) {
	c, err := NewCurrent("C1")
	require.NoError(t, err)
	require.NoError(t, c.Deposit(dec("12.5")))

	d := c.Describe()
	assert.Equal(t, model.AccountKindCurrent, d.Kind)
	assert.Equal(t, "C1", d.Number)
	assert.Equal(t, "12.50", d.Balance.StringFixed(2))

	sum := Summarize(c, nil)
	assert.Empty(t, sum.Holder)
	assert.True(t, sum.Total.Equal(dec("12.5")))
}
