package commands

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tellerbook/teller/internal/accounts"
	"github.com/tellerbook/teller/internal/passbook"
	"github.com/tellerbook/teller/internal/report"
	"github.com/tellerbook/teller/internal/session"
)

// ErrQuit is returned by Execute when the user ends the session.
var ErrQuit = errors.New("quit")

// Controller turns command lines into session operations and prints the results.
type Controller struct {
	sess *session.Session
	bank report.Bank
	out  io.Writer
}

// NewController creates a Controller for sess.
func NewController(sess *session.Session, bank report.Bank, out io.Writer) *Controller {
	return &Controller{sess: sess, bank: bank, out: out}
}

// Execute runs one command line. Blank lines and # comments do nothing.
func (c *Controller) Execute(line string) error {
	args, err := splitLine(line)
	if err != nil {
		return err
	}
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return nil
	}
	switch args[0] {
	case "exit", "quit":
		return ErrQuit
	}

	cmd := c.commands()
	cmd.SetArgs(args)
	cmd.SetOut(c.out)
	cmd.SetErr(c.out)
	return cmd.Execute()
}

// commands builds the in-session command tree. A fresh tree per line keeps
// flag values from leaking between commands.
func (c *Controller) commands() *cobra.Command {
	root := &cobra.Command{
		Use:           "teller",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	open := &cobra.Command{
		Use:   "open",
		Short: "Open an account",
	}
	open.AddCommand(
		rawCommand("savings <number> <holder...>", "Open the savings account", cobra.MinimumNArgs(2),
			func(args []string) error {
				d, err := c.sess.OpenSavings(args[0], strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				pb, err := c.sess.Passbook(d.Number)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.out, "Savings account %s opened for %s.\n", d.Number, pb.Holder)
				return nil
			}),
		&cobra.Command{
			Use:   "current <number>",
			Short: "Open the current account and link it to savings",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := c.sess.OpenCurrent(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(c.out, "Current account %s opened.\n", d.Number)
				return nil
			},
		},
		rawCommand("fixed <number> <amount>", "Open the fixed account, funded from savings", cobra.ExactArgs(2),
			func(args []string) error {
				amount, err := parseAmount(args[1])
				if err != nil {
					return err
				}
				d, err := c.sess.OpenFixed(args[0], amount)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.out, "Fixed account %s opened with %s.\n", d.Number, c.money(d.Balance))
				return nil
			}),
	)

	deposit := rawCommand("deposit <account> <amount>", "Deposit into an account", cobra.ExactArgs(2),
		func(args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			d, err := c.sess.Deposit(args[0], amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Deposited %s to %s account %s. Balance: %s\n", c.money(amount), d.Kind, d.Number, c.money(d.Balance))
			return nil
		})

	withdraw := rawCommand("withdraw <account> <amount>", "Withdraw from an account", cobra.ExactArgs(2),
		func(args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			d, err := c.sess.Withdraw(args[0], amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Withdrew %s from %s account %s. Balance: %s\n", c.money(amount), d.Kind, d.Number, c.money(d.Balance))
			return nil
		})

	transfer := rawCommand("transfer <from> <to> <amount>", "Transfer between savings and current", cobra.ExactArgs(3),
		func(args []string) error {
			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			res, err := c.sess.Transfer(args[0], args[1], amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Transferred %s from %s account %s to %s account %s.\n",
				c.money(amount), res.From.Kind, res.From.Number, res.To.Kind, res.To.Number)
			return nil
		})

	describe := &cobra.Command{
		Use:   "describe [account]",
		Short: "Show account details (default: savings, with linked accounts and total)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := c.sess.Describe(refArg(args))
			if err != nil {
				return err
			}
			return report.Statement(c.out, c.bank, sum)
		},
	}

	var asCSV bool
	passbookCmd := &cobra.Command{
		Use:   "passbook [account]",
		Short: "Show the savings passbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pb, err := c.sess.Passbook(refArg(args))
			if err != nil {
				return err
			}
			if asCSV {
				return passbook.WriteCSV(c.out, pb.Transactions)
			}
			return report.Passbook(c.out, c.bank, pb)
		},
	}
	passbookCmd.Flags().BoolVar(&asCSV, "csv", false, "print as CSV")

	list := &cobra.Command{
		Use:   "accounts",
		Short: "List open accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := c.sess.Accounts()
			if len(all) == 0 {
				fmt.Fprintln(c.out, "No accounts open.")
				return nil
			}
			for _, d := range all {
				fmt.Fprintf(c.out, "%-8s %-12s %s\n", d.Kind, d.Number, c.money(d.Balance))
			}
			return nil
		},
	}

	root.AddCommand(open, deposit, withdraw, transfer, describe, passbookCmd, list)
	return root
}

// rawCommand builds a command that receives its arguments unparsed, so
// negative amounts and holder names starting with "-" reach run intact.
// A bare -h or --help still shows the command help.
func rawCommand(use, short string, validate cobra.PositionalArgs, run func(args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return nil
			}
			return validate(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}
			return run(args)
		},
	}
}

func wantsHelp(args []string) bool {
	return slices.ContainsFunc(args, func(a string) bool { return a == "-h" || a == "--help" })
}

func (c *Controller) money(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + c.bank.Currency
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", accounts.ErrInvalidAmount, s)
	}
	return d, nil
}

func refArg(args []string) string {
	if len(args) == 0 {
		return "savings"
	}
	return args[0]
}

// splitLine splits a command line on whitespace, keeping double-quoted
// sections together.
func splitLine(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		inArg   bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			inArg = true
		case !inQuote && (r == ' ' || r == '\t' || r == '\r' || r == '\n'):
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(r)
			inArg = true
		}
	}
	if inQuote {
		return nil, errors.New("unterminated quote")
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args, nil
}
