package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/ports"
)

// DefaultSearchLimit caps catalog search results.
const DefaultSearchLimit = 20

// ReleaseService lists catalog games and attaches localized names and notability.
type ReleaseService struct {
	catalog    ports.Catalog
	translator *TranslationService
	classifier *NotabilityClassifier
	logger     *zap.Logger
}

// NewReleaseService creates a new release service. A nil translator disables localization.
func NewReleaseService(catalog ports.Catalog, translator *TranslationService, classifier *NotabilityClassifier, logger *zap.Logger) *ReleaseService {
	if classifier == nil {
		classifier = NewNotabilityClassifier(entities.DefaultNotableDevelopers(), entities.DefaultHypeThreshold)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReleaseService{
		catalog:    catalog,
		translator: translator,
		classifier: classifier,
		logger:     logger,
	}
}

// ListMonth returns the games released in q's month. Catalog failures are
// logged and yield an empty list.
func (s *ReleaseService) ListMonth(ctx context.Context, q entities.ReleaseQuery, translate bool) ([]entities.ReleaseEntry, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	games, err := s.catalog.UpcomingGames(ctx, q)
	if err != nil {
		s.logger.Warn("catalog query failed",
			zap.Int("year", q.Year),
			zap.Int("month", q.Month),
			zap.Int64("platform", q.PlatformID),
			zap.Error(err))
		return []entities.ReleaseEntry{}, nil
	}

	return s.Enrich(ctx, games, translate), nil
}

// Search finds catalog games by keyword. Catalog failures yield an empty list.
func (s *ReleaseService) Search(ctx context.Context, keyword string, platformID int64, limit int, translate bool) ([]entities.ReleaseEntry, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, errors.New("search keyword is required")
	}
	if limit <= 0 || limit > entities.MaxReleaseLimit {
		limit = DefaultSearchLimit
	}

	games, err := s.catalog.Search(ctx, keyword, platformID, limit)
	if err != nil {
		s.logger.Warn("catalog search failed", zap.String("keyword", keyword), zap.Error(err))
		return []entities.ReleaseEntry{}, nil
	}

	return s.Enrich(ctx, games, translate), nil
}

// Game returns one catalog game with its localized name.
func (s *ReleaseService) Game(ctx context.Context, id int64, translate bool) (*entities.ReleaseEntry, error) {
	g, err := s.catalog.GameByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting game %d: %w", id, err)
	}
	entries := s.Enrich(ctx, []entities.Game{*g}, translate)
	return &entries[0], nil
}

// Enrich classifies each game and, when translate is set, resolves localized names.
func (s *ReleaseService) Enrich(ctx context.Context, games []entities.Game, translate bool) []entities.ReleaseEntry {
	var translated map[string]string
	if translate && s.translator != nil {
		names := make([]string, 0, len(games))
		for i := range games {
			if games[i].Name != "" {
				names = append(names, games[i].Name)
			}
		}
		if len(names) > 0 {
			translated = s.translator.Translate(ctx, names)
		}
	}

	entries := make([]entities.ReleaseEntry, 0, len(games))
	for i := range games {
		g := &games[i]
		entry := entities.ReleaseEntry{
			Game:    g,
			Notable: s.classifier.IsNotable(g),
		}
		if translate {
			entry.LocalizedName = s.localizedName(g, translated)
		}
		entries = append(entries, entry)
	}
	return entries
}

// localizedName prefers an accepted translation, then a catalog alternative
// name in the target language. It returns "" when neither differs from the English name.
func (s *ReleaseService) localizedName(g *entities.Game, translated map[string]string) string {
	if name, ok := translated[g.Name]; ok && name != g.Name {
		return name
	}
	lang := entities.DefaultTargetLanguage()
	if s.translator != nil {
		lang = s.translator.Language()
	}
	if alt := g.AlternativeNameFor(lang.Script, lang.AltNameHints); alt != g.Name {
		return alt
	}
	return ""
}
