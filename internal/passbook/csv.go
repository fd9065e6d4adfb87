package passbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tellerbook/teller/internal/model"
)

// Header is the CSV header of a passbook statement.
const Header = "seq,id,time,kind,amount,balance"

const (
	numFields  = 6
	colSeq     = 0
	colID      = 1
	colTime    = 2
	colKind    = 3
	colAmount  = 4
	colBalance = 5
)

// WriteCSV writes transactions as a CSV statement (including header).
func WriteCSV(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colSeq] = strconv.Itoa(tx.Seq)
	row[colID] = tx.ID
	row[colTime] = tx.Time.Format(time.RFC3339)
	row[colKind] = string(tx.Kind)
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colBalance] = tx.Balance.StringFixed(2)
	return row
}
