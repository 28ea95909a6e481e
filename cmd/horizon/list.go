package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/vgame-horizon/internal/application/handlers"
	"github.com/ersonp/vgame-horizon/internal/domain/entities"
)

type listFlags struct {
	year        int
	month       int
	limit       int
	format      string
	platform    string
	noTranslate bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.year, "year", "y", 0, "Release year (default: current year)")
	cmd.Flags().IntVarP(&f.month, "month", "m", 0, "Release month 1-12 (default: current month)")
	cmd.Flags().IntVarP(&f.limit, "limit", "l", entities.DefaultReleaseLimit, "Maximum number of games")
	cmd.Flags().StringVarP(&f.platform, "platform", "p", "", "Platform: "+strings.Join(entities.PlatformNames(), ", ")+" (default from config)")
	cmd.Flags().BoolVar(&f.noTranslate, "no-translate", false, "Skip localized name lookup")
}

func (f *listFlags) request() handlers.MonthRequest {
	return handlers.MonthRequest{
		Year:      f.year,
		Month:     f.month,
		Limit:     f.limit,
		Platform:  f.platform,
		Translate: !f.noTranslate,
	}
}

func newListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games releasing in a month",
		Long:  "Lists the games releasing in a month on a platform, with localized names and a ★ on notable games.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(validFormats, flags.format) {
				return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
			}
			return withDeps(cmd.Context(), func(deps *Deps) error {
				view, err := deps.Releases.HandleMonth(cmd.Context(), flags.request())
				if err != nil {
					return explain(err)
				}
				newPrinter(cmd.OutOrStdout()).renderGames(view, platformLabel(flags.platform, deps), flags.format)
				return nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.format, "format", "f", formatTimeline, "Output format: "+strings.Join(validFormats, ", "))

	return cmd
}

func platformLabel(flag string, deps *Deps) string {
	if flag != "" {
		return flag
	}
	return deps.Config.Catalog.Platform
}
