package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/iconsplit/pkg/config"
	"github.com/walteh/iconsplit/pkg/log"
	"github.com/walteh/iconsplit/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
)

// newRootCmd creates the root command; running it with no arguments performs
// the full rewrite with built-in defaults
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "iconsplit",
		Short: "Split bulk icon imports into per-icon module imports",
		Long: `iconsplit walks a source tree and rewrites bulk named imports from an
icon package into one default import per icon, each pointing at the icon's
own module file. Files without a matching import are left untouched.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Rebuild the context logger at the level the flags ask for
			cmd.SetContext(setupLogging(debug).WithContext(cmd.Context()))
		},
		RunE: runRewrite,
	}

	addRootFlags(rootCmd)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// runRewrite runs the one-shot rewrite
func runRewrite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadOrDefault(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	// Stdout is the report stream; logging stays on stderr
	reporter := log.NewReporter(cmd.OutOrStdout(), *zerolog.Ctx(ctx))

	op, err := operation.New(operation.Options{
		Config:   cfg,
		Reporter: reporter,
	})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	if _, err := op.Execute(ctx); err != nil {
		return errors.Errorf("executing rewrite: %w", err)
	}

	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigPath, "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog on stderr
func setupLogging(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
