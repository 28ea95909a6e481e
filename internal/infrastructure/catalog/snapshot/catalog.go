package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/ports"
)

// Catalog serves game records from a snapshot held in memory.
type Catalog struct {
	games []entities.Game
}

var _ ports.Catalog = (*Catalog)(nil)

// New creates a catalog over games. The slice is copied.
func New(games []entities.Game) *Catalog {
	cp := make([]entities.Game, len(games))
	copy(cp, games)
	return &Catalog{games: cp}
}

// Load reads a snapshot file, choosing the parser by extension.
func Load(path string) (*Catalog, error) {
	parser := ForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("unsupported snapshot format: %s (use .json, .yaml or .yml)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	games, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", path, err)
	}
	return New(games), nil
}

// Len returns the number of games in the snapshot.
func (c *Catalog) Len() int {
	return len(c.games)
}

// UpcomingGames returns games on q's platform released inside q's month,
// sorted ascending by release date and capped at q.Limit.
func (c *Catalog) UpcomingGames(ctx context.Context, q entities.ReleaseQuery) ([]entities.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start, end := q.Window()
	matched := make([]entities.Game, 0)
	for i := range c.games {
		g := &c.games[i]
		released, ok := g.ReleaseTime()
		if !ok || released.Before(start) || !released.Before(end) {
			continue
		}
		if !g.OnPlatform(q.PlatformID) {
			continue
		}
		matched = append(matched, *g)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return *matched[i].FirstReleaseDate < *matched[j].FirstReleaseDate
	})
	return capped(matched, q.Limit), nil
}

// GameByID returns a single game.
func (c *Catalog) GameByID(ctx context.Context, id int64) (*entities.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range c.games {
		if c.games[i].ID == id {
			g := c.games[i]
			return &g, nil
		}
	}
	return nil, ports.ErrGameNotFound
}

// Search returns games whose name or alternative names contain keyword, ignoring case.
func (c *Catalog) Search(ctx context.Context, keyword string, platformID int64, limit int) ([]entities.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(keyword))
	if needle == "" {
		return nil, errors.New("keyword must not be empty")
	}

	matched := make([]entities.Game, 0)
	for i := range c.games {
		g := &c.games[i]
		if !g.OnPlatform(platformID) || !nameContains(fold, g, needle) {
			continue
		}
		matched = append(matched, *g)
	}
	return capped(matched, limit), nil
}

func nameContains(fold cases.Caser, g *entities.Game, needle string) bool {
	if strings.Contains(fold.String(g.Name), needle) {
		return true
	}
	for _, alt := range g.AlternativeNames {
		if strings.Contains(fold.String(alt.Name), needle) {
			return true
		}
	}
	return false
}

func capped(games []entities.Game, limit int) []entities.Game {
	if limit > 0 && len(games) > limit {
		return games[:limit]
	}
	return games
}
