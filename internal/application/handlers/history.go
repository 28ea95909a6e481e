package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/ports"
)

// History page sizes.
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)

// ErrHistoryDisabled is returned when no lookup log is configured.
var ErrHistoryDisabled = errors.New("lookup history is disabled")

// HistoryHandler lists recorded detail lookups.
type HistoryHandler struct {
	history ports.LookupLog
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(history ports.LookupLog) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// HistoryView is a page of recent lookups.
type HistoryView struct {
	Total   int               `json:"total"`
	Lookups []entities.Lookup `json:"lookups"`
}

// Handle returns up to limit recent lookups, newest first. A zero limit
// means DefaultHistoryLimit.
func (h *HistoryHandler) Handle(ctx context.Context, limit int) (*HistoryView, error) {
	if h.history == nil {
		return nil, ErrHistoryDisabled
	}
	if limit < 0 || limit > MaxHistoryLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidRequest, MaxHistoryLimit)
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	lookups, err := h.history.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("reading lookup history: %w", err)
	}
	if lookups == nil {
		lookups = []entities.Lookup{}
	}
	return &HistoryView{Total: len(lookups), Lookups: lookups}, nil
}
