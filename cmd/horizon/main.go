// Package main provides the entry point for the horizon CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version       = "0.1.0-dev"
	globalVerbose bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:           "horizon",
		Short:         "Upcoming game releases with localized names and creative-staff details",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newInitCmd(),
		newListCmd(),
		newSearchCmd(),
		newDetailCmd(),
		newBrowseCmd(),
		newServeCmd(),
		newHistoryCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
