package ports

import (
	"context"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
)

// LookupLog records detail lookups. It is write-mostly history and is never
// consulted to answer a lookup.
type LookupLog interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Record appends a lookup.
	Record(ctx context.Context, lookup *entities.Lookup) error

	// Recent returns the latest lookups, newest first.
	Recent(ctx context.Context, limit int) ([]entities.Lookup, error)

	// Close releases the underlying storage.
	Close() error
}
