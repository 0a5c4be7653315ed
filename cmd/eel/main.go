// Command eel renders templates and evaluates expressions with the eel
// helpers. Configuration is read from the environment (and an optional .env
// file) the same way a host application would.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/carbon-eel/eel"
	"github.com/carbon-eel/eel/pkg/config"
	"github.com/carbon-eel/eel/pkg/logger"
)

var (
	// Global flags
	logLevel string

	log     *slog.Logger
	helpers *eel.Helpers
)

var rootCmd = &cobra.Command{
	Use:   "eel",
	Short: "Template helpers for rendering and expression evaluation",
	Long: `eel exposes the Carbon template helpers on the command line.

Templates are rendered with the Go template engine, expressions are evaluated
with CEL. Settings come from EEL_* environment variables, see eel.Config.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if helpers != nil {
			helpers.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override EEL_LOG_LEVEL (debug, info, warn, error)")

	rootCmd.AddCommand(renderCmd, evalCmd, minifyCmd, watchCmd, versionCmd)
}

func setup(ctx context.Context) error {
	var cfg eel.Config
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts := []logger.Option{logger.WithEnvironment(cfg.Env, "eel")}
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if level != "" {
		l, err := logger.ParseLevel(level)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(l))
	}
	log = logger.New(opts...)

	h, err := eel.NewFromConfig(ctx, cfg, eel.WithLogger(log))
	if err != nil {
		return fmt.Errorf("failed to initialize helpers: %w", err)
	}
	helpers = h
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
