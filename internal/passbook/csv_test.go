package passbook

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerbook/teller/internal/model"
)

func TestWriteCSV(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	txs := []model.Transaction{
		{ID: "a1", Seq: 1, Kind: model.TransactionDeposit, Amount: decimal.NewFromInt(500), Balance: decimal.NewFromInt(500), Time: ts},
		{ID: "b2", Seq: 2, Kind: model.TransactionWithdrawal, Amount: decimal.RequireFromString("200.5"), Balance: decimal.RequireFromString("299.5"), Time: ts},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, txs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "1,a1,2025-03-14T09:30:00Z,deposit,500.00,500.00", lines[1])
	assert.Equal(t, "2,b2,2025-03-14T09:30:00Z,withdrawal,200.50,299.50", lines[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, Header+"\n", buf.String())
}

func TestMarshalTransaction_QuotesID(t *testing.T) {
	tx := model.Transaction{ID: "a,b", Seq: 7, Kind: model.TransactionDeposit, Amount: decimal.RequireFromString("0.5"), Balance: decimal.NewFromInt(3)}

	row := MarshalTransaction(tx)
	require.Len(t, row, numFields)
	assert.Equal(t, "7", row[colSeq])
	assert.Equal(t, "0.50", row[colAmount])
	assert.Equal(t, "3.00", row[colBalance])

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []model.Transaction{tx}))
	assert.Contains(t, buf.String(), `7,"a,b",`)
}
