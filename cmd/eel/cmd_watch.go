package main

import (
	"fmt"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carbon-eel/eel/pkg/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the tailwind configuration and flush the merge cache on change",
	Long: `Watches the files listed in EEL_TAILWIND_CONFIG until interrupted.
Mostly useful to check the watcher setup of a deployment.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := helpers.WatchTailwindConfig(ctx); err != nil {
			return err
		}
		log.InfoContext(ctx, "watching tailwind configuration", logger.Component("tailwind"))

		<-ctx.Done()
		log.InfoContext(ctx, "watcher stopped", logger.Component("tailwind"))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build and framework versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		build := "devel"
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
			build = info.Main.Version
		}
		fmt.Fprintf(cmd.OutOrStdout(), "eel %s (framework %s)\n", build, helpers.Version.FrameworkVersion())
	},
}
