package entities

import (
	"errors"
	"fmt"
	"strings"
)

// CreditRole is a production role a person is credited for.
type CreditRole string

// Credit roles the detail fetcher asks for.
const (
	CreditDirector CreditRole = "director"
	CreditWriter   CreditRole = "writer"
	CreditComposer CreditRole = "composer"
	CreditProducer CreditRole = "producer"
)

// CreditRoles lists the roles in display order.
var CreditRoles = []CreditRole{CreditDirector, CreditWriter, CreditComposer, CreditProducer}

// Valid reports whether r is a known role.
func (r CreditRole) Valid() bool {
	for _, role := range CreditRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Credit is a named contributor tied to one production role.
// Credits are built per fetch and are not modified afterwards.
type Credit struct {
	Name     string     `json:"name"`
	Role     CreditRole `json:"role"`
	KnownFor []string   `json:"known_for"`
}

// NewCredit builds a credit, copying knownFor so the caller's slice is not shared.
func NewCredit(name string, role CreditRole, knownFor []string) (Credit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Credit{}, errors.New("credit name is required")
	}
	if !role.Valid() {
		return Credit{}, fmt.Errorf("invalid credit role %q", role)
	}

	works := make([]string, 0, len(knownFor))
	for _, w := range knownFor {
		if w = strings.TrimSpace(w); w != "" {
			works = append(works, w)
		}
	}

	return Credit{Name: name, Role: role, KnownFor: works}, nil
}

// GameDetails is the creative-staff biography of a game.
type GameDetails struct {
	Name         string
	Directors    []Credit
	Writers      []Credit
	Composers    []Credit
	Producers    []Credit
	Series       string
	RelatedGames []string
	Highlights   []string
}

// NewGameDetails returns details for name with empty, non-nil collections.
func NewGameDetails(name string) *GameDetails {
	return &GameDetails{
		Name:         name,
		Directors:    []Credit{},
		Writers:      []Credit{},
		Composers:    []Credit{},
		Producers:    []Credit{},
		RelatedGames: []string{},
		Highlights:   []string{},
	}
}

// CreditsFor returns the credits for role.
func (d *GameDetails) CreditsFor(role CreditRole) []Credit {
	if d == nil {
		return nil
	}
	switch role {
	case CreditDirector:
		return d.Directors
	case CreditWriter:
		return d.Writers
	case CreditComposer:
		return d.Composers
	case CreditProducer:
		return d.Producers
	default:
		return nil
	}
}

// CreditCount returns the number of credits across all roles.
func (d *GameDetails) CreditCount() int {
	if d == nil {
		return 0
	}
	return len(d.Directors) + len(d.Writers) + len(d.Composers) + len(d.Producers)
}

// IsEmpty reports whether the details carry no information at all.
func (d *GameDetails) IsEmpty() bool {
	if d == nil {
		return true
	}
	return d.CreditCount() == 0 &&
		strings.TrimSpace(d.Series) == "" &&
		len(d.RelatedGames) == 0 &&
		len(d.Highlights) == 0
}

// GameContext is known catalog information passed to the detail fetcher to
// disambiguate the game. All fields are optional.
type GameContext struct {
	Developer     string
	Publisher     string
	ReleaseDate   string
	EnglishName   string
	LocalizedName string
}

// ContextFromGame builds a GameContext from a catalog record.
func ContextFromGame(g *Game, localizedName string) *GameContext {
	if g == nil {
		return nil
	}
	return &GameContext{
		Developer:     g.Companies(RoleDeveloper),
		Publisher:     g.Companies(RolePublisher),
		ReleaseDate:   g.ReleaseDate(),
		EnglishName:   g.Name,
		LocalizedName: localizedName,
	}
}
