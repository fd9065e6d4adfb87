package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCommand(a *app) *cobra.Command {
	var stopOnError bool
	var echo bool

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run session commands from a file, one per line (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, a, args[0], stopOnError, echo)
		},
	}

	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "stop at the first failing command")
	cmd.Flags().BoolVar(&echo, "echo", false, "print each command before its output")

	return cmd
}

func runScript(cmd *cobra.Command, a *app, path string, stopOnError, echo bool) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		r = f
	}

	ctrl := a.newController(cmd)
	out := cmd.OutOrStdout()

	failures := 0
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); echo && trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			fmt.Fprintf(out, "%s%s\n", a.cfg.Shell.Prompt, trimmed)
		}

		err := ctrl.Execute(line)
		if errors.Is(err, ErrQuit) {
			break
		}
		if err != nil {
			failures++
			fmt.Fprintf(out, "error: line %d: %v\n", lineNo, err)
			if stopOnError {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	if failures > 0 {
		a.logger.Warn("script finished with errors", zap.String("script", path), zap.Int("failures", failures))
	}
	return nil
}
