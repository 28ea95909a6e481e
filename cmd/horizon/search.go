package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/vgame-horizon/internal/application/handlers"
	"github.com/ersonp/vgame-horizon/internal/domain/services"
)

func newSearchCmd() *cobra.Command {
	var (
		limit       int
		platform    string
		noTranslate bool
	)

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search the catalog by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := handlers.SearchRequest{
				Query:     strings.Join(args, " "),
				Limit:     limit,
				Platform:  platform,
				Translate: !noTranslate,
			}
			return withDeps(cmd.Context(), func(deps *Deps) error {
				view, err := deps.Releases.HandleSearch(cmd.Context(), req)
				if err != nil {
					return explain(err)
				}
				p := newPrinter(cmd.OutOrStdout())
				if len(view.Games) == 0 {
					p.printf("No games matching %q.\n", view.Query)
					return nil
				}
				p.renderCompact("Results for \""+view.Query+"\"", view.Games, false)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", services.DefaultSearchLimit, "Maximum number of results")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Platform filter (default from config)")
	cmd.Flags().BoolVar(&noTranslate, "no-translate", false, "Skip localized name lookup")

	return cmd
}
