package mocks

import (
	"context"
	"sync"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
)

// LookupLog is a mock implementation of ports.LookupLog.
type LookupLog struct {
	mu      sync.Mutex
	Lookups []entities.Lookup
	Err     error
}

// EnsureSchema returns the configured error.
func (m *LookupLog) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Record stores a copy of the lookup.
func (m *LookupLog) Record(_ context.Context, lookup *entities.Lookup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Lookups = append(m.Lookups, *lookup)
	return nil
}

// Recent returns stored lookups, newest first.
func (m *LookupLog) Recent(_ context.Context, limit int) ([]entities.Lookup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]entities.Lookup, 0, len(m.Lookups))
	for i := len(m.Lookups) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.Lookups[i])
	}
	return out, nil
}

// Close does nothing.
func (m *LookupLog) Close() error {
	return nil
}
