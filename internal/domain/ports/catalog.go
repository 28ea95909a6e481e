package ports

import (
	"context"
	"errors"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
)

// ErrGameNotFound is returned by GameByID when the catalog has no such game.
var ErrGameNotFound = errors.New("game not found")

// Catalog defines the interface for the upstream game catalog.
type Catalog interface {
	// UpcomingGames returns the games released on q's platform inside q's
	// month window, sorted ascending by release date and capped at q.Limit.
	UpcomingGames(ctx context.Context, q entities.ReleaseQuery) ([]entities.Game, error)

	// GameByID returns a single game.
	GameByID(ctx context.Context, id int64) (*entities.Game, error)

	// Search finds games whose names match keyword. A zero platformID searches all platforms.
	Search(ctx context.Context, keyword string, platformID int64, limit int) ([]entities.Game, error)
}
