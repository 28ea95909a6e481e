package handlers

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/ports"
	"github.com/ersonp/vgame-horizon/internal/domain/services"
)

// DetailsHandler handles creative-staff detail lookups.
type DetailsHandler struct {
	service *services.DetailService
	history ports.LookupLog
	logger  *zap.Logger
	now     func() time.Time
}

// NewDetailsHandler creates a new details handler. history may be nil.
func NewDetailsHandler(service *services.DetailService, history ports.LookupLog, logger *zap.Logger) *DetailsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DetailsHandler{
		service: service,
		history: history,
		logger:  logger,
		now:     time.Now,
	}
}

// DetailRequest names the game to look up. Fallback is tried once when the
// first lookup finds nothing and it differs from Name.
type DetailRequest struct {
	Name     string
	Fallback string
	Info     *entities.GameContext
}

// Handle looks up the details of a game. Finding nothing is not an error: the
// returned view then has empty credit lists.
func (h *DetailsHandler) Handle(ctx context.Context, req DetailRequest) (*DetailView, error) {
	if h.service == nil || !h.service.Available() {
		return nil, ErrLLMUnavailable
	}

	name := strings.TrimSpace(req.Name)
	fallback := strings.TrimSpace(req.Fallback)
	if name == "" && fallback == "" {
		return nil, ErrInvalidRequest
	}

	start := h.now()
	result := h.service.Fetch(ctx, name, req.Info)
	resolved := name
	if !result.Found() && fallback != "" && fallback != name {
		h.logger.Debug("retrying detail lookup with fallback name",
			zap.String("game", name),
			zap.String("fallback", fallback),
			zap.Stringer("status", result.Status))
		result = h.service.Fetch(ctx, fallback, req.Info)
		resolved = fallback
	}

	h.record(ctx, &entities.Lookup{
		Query:        name,
		Fallback:     fallback,
		ResolvedName: resolvedName(result, resolved),
		Status:       result.Status.String(),
		Credits:      result.Details.CreditCount(),
		DurationMs:   h.now().Sub(start).Milliseconds(),
		CreatedAt:    start.UTC(),
	})

	if !result.Found() {
		view := EmptyDetailView(name)
		if name == "" {
			view.Name = fallback
		}
		return &view, nil
	}

	view := NewDetailView(result.Details)
	return &view, nil
}

// record appends the lookup to history. Failures are logged, never returned.
func (h *DetailsHandler) record(ctx context.Context, lookup *entities.Lookup) {
	if h.history == nil {
		return
	}
	if err := h.history.Record(ctx, lookup); err != nil {
		h.logger.Warn("recording lookup failed", zap.String("game", lookup.Query), zap.Error(err))
	}
}

func resolvedName(result entities.DetailsResult, queried string) string {
	if !result.Found() {
		return ""
	}
	if result.Details.Name != "" {
		return result.Details.Name
	}
	return queried
}
