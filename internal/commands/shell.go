package commands

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newShellCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, a)
		},
	}
}

func runShell(cmd *cobra.Command, a *app) error {
	ctrl := a.newController(cmd)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s\nType \"help\" for commands, \"exit\" to leave.\n", a.cfg.Bank.Name)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, a.cfg.Shell.Prompt)
		if !scanner.Scan() {
			break
		}
		err := ctrl.Execute(scanner.Text())
		if errors.Is(err, ErrQuit) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
