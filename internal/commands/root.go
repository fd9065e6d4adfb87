package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tellerbook/teller/internal/buildinfo"
	"github.com/tellerbook/teller/internal/config"
	"github.com/tellerbook/teller/internal/logging"
	"github.com/tellerbook/teller/internal/report"
	"github.com/tellerbook/teller/internal/session"
)

// app carries what the root command's persistent flags resolve to.
type app struct {
	configPath string
	envFile    string

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "teller",
		Short:   "Single-customer savings, current and fixed account session",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, a)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "teller.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "environment file")

	rootCmd.AddCommand(newShellCommand(a))
	rootCmd.AddCommand(newRunCommand(a))
	rootCmd.AddCommand(newConfigCommand(a))

	return rootCmd
}

func (a *app) load() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// loadConfig reads the config file and environment overrides without
// validating the result.
func (a *app) loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(a.envFile); err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newController starts a fresh session writing to out.
func (a *app) newController(cmd *cobra.Command) *Controller {
	sess := session.New(
		session.WithLogger(a.logger),
		session.WithPassbookCapacity(a.cfg.Passbook.Capacity),
	)
	bank := report.Bank{Name: a.cfg.Bank.Name, Currency: a.cfg.Bank.Currency}
	return NewController(sess, bank, cmd.OutOrStdout())
}
