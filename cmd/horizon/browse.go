package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/vgame-horizon/internal/application/handlers"
)

func newBrowseCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a month of releases and look up creative staff",
		Long:  "Shows a numbered list of releases. Enter a number to see who made the game, or q to quit.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				view, err := deps.Releases.HandleMonth(cmd.Context(), flags.request())
				if err != nil {
					return explain(err)
				}

				p := newPrinter(cmd.OutOrStdout())
				if len(view.Games) == 0 {
					p.renderGames(view, platformLabel(flags.platform, deps), formatCompact)
					return nil
				}

				state := &browseState{
					games:   view.Games,
					title:   fmt.Sprintf("%s releases, %d-%02d", platformLabel(flags.platform, deps), view.Year, view.Month),
					details: deps.Details,
					printer: p,
				}
				return state.runInputLoop(cmd.Context(), cmd.InOrStdin())
			})
		},
	}

	flags.register(cmd)

	return cmd
}

// detailLookup is the part of DetailsHandler used by browse.
type detailLookup interface {
	Handle(ctx context.Context, req handlers.DetailRequest) (*handlers.DetailView, error)
}

type browseState struct {
	games   []handlers.GameView
	title   string
	details detailLookup
	printer *printer
}

func (s *browseState) runInputLoop(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		s.printer.renderCompact(s.title, s.games, true)
		s.printer.printf("Enter a number for creative staff, or q to quit.\n> ")
		if !scanner.Scan() {
			break
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if input == "q" || input == "quit" || input == "exit" {
			s.printer.println("Goodbye!")
			return nil
		}
		if input == "" {
			continue
		}

		if err := s.handleChoice(ctx, input); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
	return scanner.Err()
}

// handleChoice looks up the selected game. Only an unavailable LLM is
// returned as an error; bad input is reported and the loop continues.
func (s *browseState) handleChoice(ctx context.Context, input string) error {
	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(s.games) {
		s.printer.printf("Please enter a number between 1 and %d, or q.\n\n", len(s.games))
		return nil
	}

	game := s.games[idx-1]
	name, fallback := game.DetailQuery()
	s.printer.printf("\nLooking up %s...\n\n", displayName(game))

	view, err := s.details.Handle(ctx, handlers.DetailRequest{
		Name:     name,
		Fallback: fallback,
		Info:     game.Context(),
	})
	if errors.Is(err, handlers.ErrLLMUnavailable) {
		return explain(err)
	}
	if err != nil {
		s.printer.printf("Lookup failed: %v\n\n", err)
		return nil
	}

	s.printer.renderDetail(view)
	return nil
}
