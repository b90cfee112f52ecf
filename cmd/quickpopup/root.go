package main

import (
	"os"

	"github.com/spf13/cobra"

	quickpopup "github.com/riverfjs/quickpopup-go"
	"github.com/riverfjs/quickpopup-go/internal/logger"
)

type rootOptions struct {
	logLevel string
	envFile  string
}

// newRootCmd builds a fresh command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "quickpopup",
		Short:        "Split Japanese notes into paragraphs and place text-action popups",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = quickpopup.Logger.Sync()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug|info|warn|error), env "+envLogLevel)
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file with QUICKPOPUP_* settings; a missing default file is ignored")

	cmd.AddCommand(newSplitCmd(), newPlaceCmd())
	return cmd
}

// setup loads the env file and installs the logger before any subcommand runs.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if err := loadEnvFile(o.envFile, cmd.Flags().Changed("env-file")); err != nil {
		return err
	}

	level := o.logLevel
	if !cmd.Flags().Changed("log-level") {
		if v := os.Getenv(envLogLevel); v != "" {
			level = v
		}
	}
	l, err := logger.Build(level, "stderr")
	if err != nil {
		return err
	}
	quickpopup.SetLogger(l)
	return nil
}
