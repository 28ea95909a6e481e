package entities

import "time"

// Lookup records one detail lookup for the history log.
type Lookup struct {
	ID           string    `json:"id"`
	Query        string    `json:"query"`
	Fallback     string    `json:"fallback,omitempty"`
	ResolvedName string    `json:"resolved_name,omitempty"`
	Status       string    `json:"status"`
	Credits      int       `json:"credits"`
	DurationMs   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}
