package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/ports"
	"github.com/ersonp/vgame-horizon/internal/domain/services"
)

// ReleasesHandler handles games-by-month listings and catalog searches.
type ReleasesHandler struct {
	service    *services.ReleaseService
	platformID int64
	now        func() time.Time
}

// NewReleasesHandler creates a new releases handler. A nil service makes every
// call fail with ErrCatalogUnavailable.
func NewReleasesHandler(service *services.ReleaseService, platformID int64) *ReleasesHandler {
	return &ReleasesHandler{
		service:    service,
		platformID: platformID,
		now:        time.Now,
	}
}

// MonthRequest selects a month of releases. Zero Year and Month default to the
// current month, zero Limit to entities.DefaultReleaseLimit and an empty
// Platform to the configured one.
type MonthRequest struct {
	Year      int
	Month     int
	Limit     int
	Platform  string
	Translate bool
}

// SearchRequest is a keyword search over the catalog.
type SearchRequest struct {
	Query     string
	Limit     int
	Platform  string
	Translate bool
}

// HandleMonth lists the games released in the requested month.
func (h *ReleasesHandler) HandleMonth(ctx context.Context, req MonthRequest) (*GamesView, error) {
	if h.service == nil {
		return nil, ErrCatalogUnavailable
	}

	platformID, err := h.resolvePlatform(req.Platform)
	if err != nil {
		return nil, err
	}

	now := h.now()
	q := entities.ReleaseQuery{
		Year:       req.Year,
		Month:      req.Month,
		Limit:      req.Limit,
		PlatformID: platformID,
	}
	if q.Year == 0 {
		q.Year = now.Year()
	}
	if q.Month == 0 {
		q.Month = int(now.Month())
	}
	if q.Limit == 0 {
		q.Limit = entities.DefaultReleaseLimit
	}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	entries, err := h.service.ListMonth(ctx, q, req.Translate)
	if err != nil {
		return nil, fmt.Errorf("listing releases: %w", err)
	}

	games := gameViews(entries)
	return &GamesView{
		Year:  q.Year,
		Month: q.Month,
		Total: len(games),
		Games: games,
	}, nil
}

// HandleSearch searches the catalog by keyword.
func (h *ReleasesHandler) HandleSearch(ctx context.Context, req SearchRequest) (*SearchView, error) {
	if h.service == nil {
		return nil, ErrCatalogUnavailable
	}
	if req.Query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidRequest)
	}
	if req.Limit < 0 || req.Limit > entities.MaxReleaseLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidRequest, entities.MaxReleaseLimit)
	}

	platformID, err := h.resolvePlatform(req.Platform)
	if err != nil {
		return nil, err
	}

	entries, err := h.service.Search(ctx, req.Query, platformID, req.Limit, req.Translate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	games := gameViews(entries)
	return &SearchView{
		Query: req.Query,
		Total: len(games),
		Games: games,
	}, nil
}

// HandleGame returns one game by catalog id.
func (h *ReleasesHandler) HandleGame(ctx context.Context, id int64, translate bool) (*GameView, error) {
	if h.service == nil {
		return nil, ErrCatalogUnavailable
	}

	entry, err := h.service.Game(ctx, id, translate)
	if err != nil {
		if errors.Is(err, ports.ErrGameNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching game: %w", err)
	}

	view := NewGameView(*entry)
	return &view, nil
}

func (h *ReleasesHandler) resolvePlatform(name string) (int64, error) {
	if name == "" {
		return h.platformID, nil
	}
	id, err := entities.PlatformID(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return id, nil
}

func gameViews(entries []entities.ReleaseEntry) []GameView {
	views := make([]GameView, 0, len(entries))
	for _, e := range entries {
		views = append(views, NewGameView(e))
	}
	return views
}
