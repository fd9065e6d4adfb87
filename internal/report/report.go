package report

import (
	"fmt"
	"io"

	"github.com/flosch/pongo2/v4"
	"github.com/shopspring/decimal"

	"github.com/tellerbook/teller/internal/accounts"
	"github.com/tellerbook/teller/internal/session"
)

const statementSrc = `{% autoescape off %}{{ bank }}
{% for a in accounts %}
{{ a.Title }} Account Details:
  Account Number: {{ a.Number }}
  Balance: {{ a.Balance|money }} {{ currency }}
{% if a.Holder %}  Account Holder: {{ a.Holder }}
{% endif %}{% endfor %}{% if savings %}
Total Balance: {{ total|money }} {{ currency }}
{% endif %}{% endautoescape %}`

const passbookSrc = `{% autoescape off %}{{ bank }}
Savings Account Passbook
  Account Number: {{ number }}
  Account Holder: {{ holder }}
  Current Balance: {{ balance|money }} {{ currency }}

Transaction History:
{% for t in transactions %}  {{ t.Seq }}. {{ t.Kind }}: {{ t.Amount|money }}
{% empty %}  No transactions yet.
{% endfor %}{% endautoescape %}`

var (
	statementTpl *pongo2.Template
	passbookTpl  *pongo2.Template
)

func init() {
	// Filters must exist before templates using them are parsed.
	if err := pongo2.RegisterFilter("money", filterMoney); err != nil {
		panic(err)
	}
	statementTpl = pongo2.Must(pongo2.FromString(statementSrc))
	passbookTpl = pongo2.Must(pongo2.FromString(passbookSrc))
}

// filterMoney formats a decimal.Decimal with two decimal places.
func filterMoney(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if d, ok := in.Interface().(decimal.Decimal); ok {
		return pongo2.AsValue(d.StringFixed(2)), nil
	}
	return in, nil
}

// Bank is the letterhead printed on every report.
type Bank struct {
	Name     string
	Currency string
}

type accountView struct {
	Title   string
	Number  string
	Balance decimal.Decimal
	Holder  string
}

type transactionView struct {
	Seq    int
	Kind   string
	Amount decimal.Decimal
}

func viewOf(d accounts.Details, holder string) accountView {
	return accountView{Title: d.Kind.Title(), Number: d.Number, Balance: d.Balance, Holder: holder}
}

// Statement writes the account details. A savings summary also lists the
// linked accounts and the total balance.
func Statement(w io.Writer, bank Bank, sum accounts.Summary) error {
	views := []accountView{viewOf(sum.Account, sum.Holder)}
	if sum.Current != nil {
		views = append(views, viewOf(*sum.Current, ""))
	}
	if sum.Fixed != nil {
		views = append(views, viewOf(*sum.Fixed, ""))
	}

	err := statementTpl.ExecuteWriter(pongo2.Context{
		"bank":     bank.Name,
		"currency": bank.Currency,
		"accounts": views,
		"savings":  sum.Holder != "",
		"total":    sum.Total,
	}, w)
	if err != nil {
		return fmt.Errorf("rendering statement: %w", err)
	}
	return nil
}

// Passbook writes the savings passbook, oldest transaction first.
func Passbook(w io.Writer, bank Bank, pb session.Passbook) error {
	txs := make([]transactionView, len(pb.Transactions))
	for i, tx := range pb.Transactions {
		txs[i] = transactionView{Seq: tx.Seq, Kind: tx.Kind.Title(), Amount: tx.Amount}
	}

	err := passbookTpl.ExecuteWriter(pongo2.Context{
		"bank":         bank.Name,
		"currency":     bank.Currency,
		"number":       pb.Number,
		"holder":       pb.Holder,
		"balance":      pb.Balance,
		"transactions": txs,
	}, w)
	if err != nil {
		return fmt.Errorf("rendering passbook: %w", err)
	}
	return nil
}
