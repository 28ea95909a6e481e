package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/vgame-horizon/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize horizon in the current directory",
		Long:  "Creates a .horizon directory with a default config file and the lookup history database.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			result, err := handlers.NewInitHandler(openLookupLog).Handle(cmd.Context(), cwd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
			if result.HistoryPath != "" {
				fmt.Fprintf(out, "Created %s\n", result.HistoryPath)
			}
			fmt.Fprintln(out, "\nSet TWITCH_CLIENT_ID, TWITCH_CLIENT_SECRET and ARK_API_KEY + ARK_ENDPOINT_ID")
			fmt.Fprintln(out, "(or OPENAI_API_KEY) in .env or the environment.")
			return nil
		},
	}
}
