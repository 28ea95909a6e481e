package services

import (
	"github.com/ersonp/vgame-horizon/internal/domain/entities"
)

// NotabilityClassifier decides whether a game warrants a credits lookup.
type NotabilityClassifier struct {
	allow     entities.NotableDevelopers
	threshold int
}

// NewNotabilityClassifier creates a classifier. A non-positive threshold uses
// entities.DefaultHypeThreshold.
func NewNotabilityClassifier(allow entities.NotableDevelopers, threshold int) *NotabilityClassifier {
	if threshold <= 0 {
		threshold = entities.DefaultHypeThreshold
	}
	return &NotabilityClassifier{allow: allow, threshold: threshold}
}

// Threshold returns the hype count at which a game is notable.
func (c *NotabilityClassifier) Threshold() int {
	return c.threshold
}

// IsNotable reports whether the game has enough hype or an involved company
// on the allow-list. Either condition is sufficient.
func (c *NotabilityClassifier) IsNotable(g *entities.Game) bool {
	if g == nil {
		return false
	}
	if g.HypeCount() >= c.threshold {
		return true
	}
	for _, name := range g.AllCompanyNames() {
		if c.allow.Matches(name) {
			return true
		}
	}
	return false
}
