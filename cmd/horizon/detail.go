package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/vgame-horizon/internal/application/handlers"
)

func newDetailCmd() *cobra.Command {
	var (
		fallback string
		gameID   int64
	)

	cmd := &cobra.Command{
		Use:   "detail [name]",
		Short: "Show the creative staff of a game",
		Long: `Asks the LLM for the directors, writers, composers and producers of a game.

With --id the game is read from the catalog first, so its developer, publisher
and release date help identify it, and its English name becomes the fallback
unless --fallback is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if name == "" && gameID == 0 {
				return errors.New("a game name or --id is required")
			}

			return withDeps(cmd.Context(), func(deps *Deps) error {
				var game *handlers.GameView
				if gameID != 0 {
					var err error
					if game, err = deps.Releases.HandleGame(cmd.Context(), gameID, true); err != nil {
						return explain(err)
					}
				}
				req := detailRequest(name, fallback, game)

				p := newPrinter(cmd.OutOrStdout())
				fmt.Fprintf(cmd.ErrOrStderr(), "Looking up %s...\n", req.Name)
				view, err := deps.Details.Handle(cmd.Context(), req)
				if err != nil {
					return explain(err)
				}
				p.renderDetail(view)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&fallback, "fallback", "", "Name to retry with when the first lookup finds nothing")
	cmd.Flags().Int64Var(&gameID, "id", 0, "Catalog id of the game")

	return cmd
}

// detailRequest builds a lookup from the flags, filling blanks from the
// catalog game when one was loaded. Values given on the command line win.
func detailRequest(name, fallback string, game *handlers.GameView) handlers.DetailRequest {
	req := handlers.DetailRequest{Name: name, Fallback: fallback}
	if game == nil {
		return req
	}
	gameName, gameFallback := game.DetailQuery()
	if req.Name == "" {
		req.Name = gameName
	}
	if req.Fallback == "" {
		req.Fallback = gameFallback
	}
	req.Info = game.Context()
	return req
}
