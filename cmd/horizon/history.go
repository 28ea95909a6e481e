package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/vgame-horizon/internal/application/handlers"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent detail lookups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				view, err := deps.History.Handle(cmd.Context(), limit)
				if err != nil {
					return explain(err)
				}
				newPrinter(cmd.OutOrStdout()).renderHistory(view)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", handlers.DefaultHistoryLimit, "Maximum number of lookups")

	return cmd
}
