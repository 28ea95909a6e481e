package main

import (
	"errors"
	"fmt"

	"github.com/ersonp/vgame-horizon/internal/application/handlers"
)

// explain adds a configuration hint to unavailable-service errors.
func explain(err error) error {
	switch {
	case errors.Is(err, handlers.ErrCatalogUnavailable):
		return fmt.Errorf("%w: set TWITCH_CLIENT_ID and TWITCH_CLIENT_SECRET, or use a catalog snapshot", err)
	case errors.Is(err, handlers.ErrLLMUnavailable):
		return fmt.Errorf("%w: set ARK_API_KEY and ARK_ENDPOINT_ID, or OPENAI_API_KEY", err)
	case errors.Is(err, handlers.ErrHistoryDisabled):
		return fmt.Errorf("%w: run 'horizon init' or enable history in the config", err)
	default:
		return err
	}
}
