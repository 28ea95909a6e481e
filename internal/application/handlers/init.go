// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/vgame-horizon/internal/domain/ports"
	"github.com/ersonp/vgame-horizon/internal/infrastructure/config"
)

// HistoryOpener opens the lookup log stored at path.
type HistoryOpener func(path string) (ports.LookupLog, error)

// InitHandler handles project initialization.
type InitHandler struct {
	openHistory HistoryOpener
}

// NewInitHandler creates a new init handler. A nil opener skips creating the
// history database.
func NewInitHandler(openHistory HistoryOpener) *InitHandler {
	return &InitHandler{
		openHistory: openHistory,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath  string
	HistoryPath string
}

// Handle writes the default config and creates the history schema.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("horizon already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	result := &InitResult{ConfigPath: config.ConfigFilePath(basePath)}
	if !cfg.History.Enabled || h.openHistory == nil {
		return result, nil
	}

	path := cfg.HistoryPath(basePath)
	history, err := h.openHistory(path)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer history.Close()

	if err := history.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	result.HistoryPath = path
	return result, nil
}
