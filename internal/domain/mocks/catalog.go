package mocks

import (
	"context"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/ports"
)

// Catalog is a mock implementation of ports.Catalog.
type Catalog struct {
	Games   []entities.Game
	Results []entities.Game
	ByID    map[int64]*entities.Game
	Err     error

	LastQuery   entities.ReleaseQuery
	LastKeyword string
}

// UpcomingGames returns the configured games or error.
func (m *Catalog) UpcomingGames(_ context.Context, q entities.ReleaseQuery) ([]entities.Game, error) {
	m.LastQuery = q
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Games, nil
}

// GameByID returns the configured game or ports.ErrGameNotFound.
func (m *Catalog) GameByID(_ context.Context, id int64) (*entities.Game, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if g, ok := m.ByID[id]; ok {
		return g, nil
	}
	return nil, ports.ErrGameNotFound
}

// Search returns the configured results or error.
func (m *Catalog) Search(_ context.Context, keyword string, _ int64, _ int) ([]entities.Game, error) {
	m.LastKeyword = keyword
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results, nil
}
