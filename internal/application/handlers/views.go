package handlers

import (
	"github.com/ersonp/vgame-horizon/internal/domain/entities"
)

// unknownGameName is shown for catalog records without a name.
const unknownGameName = "Unknown"

// GameView is one game in a listing. Nil pointers serialize as null.
type GameView struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	LocalizedName *string  `json:"localized_name"`
	ReleaseDate   *string  `json:"release_date"`
	Developer     *string  `json:"developer"`
	Publisher     *string  `json:"publisher"`
	Genres        []string `json:"genres"`
	Summary       *string  `json:"summary"`
	CoverURL      *string  `json:"cover_url"`
	IsNotable     bool     `json:"is_notable"`
}

// NewGameView converts a release entry to its API shape.
func NewGameView(e entities.ReleaseEntry) GameView {
	g := e.Game
	if g == nil {
		g = &entities.Game{}
	}

	name := g.Name
	if name == "" {
		name = unknownGameName
	}
	genres := g.GenreNames()
	if genres == nil {
		genres = []string{}
	}

	return GameView{
		ID:            g.ID,
		Name:          name,
		LocalizedName: optional(e.LocalizedName),
		ReleaseDate:   optional(g.ReleaseDate()),
		Developer:     optional(g.Companies(entities.RoleDeveloper)),
		Publisher:     optional(g.Companies(entities.RolePublisher)),
		Genres:        genres,
		Summary:       optional(g.Summary),
		CoverURL:      optional(g.CoverURL()),
		IsNotable:     e.Notable,
	}
}

// DisplayName returns the localized name when present, else the English name.
func (v GameView) DisplayName() string {
	if v.LocalizedName != nil {
		return *v.LocalizedName
	}
	return v.Name
}

// DetailQuery returns the name to look up first and the fallback to retry
// with, preferring the localized name.
func (v GameView) DetailQuery() (name, fallback string) {
	if v.LocalizedName != nil {
		return *v.LocalizedName, v.Name
	}
	return v.Name, ""
}

// Context returns the known catalog information for a detail lookup.
func (v GameView) Context() *entities.GameContext {
	return &entities.GameContext{
		Developer:     deref(v.Developer),
		Publisher:     deref(v.Publisher),
		ReleaseDate:   deref(v.ReleaseDate),
		EnglishName:   v.Name,
		LocalizedName: deref(v.LocalizedName),
	}
}

// GamesView is the games-by-month listing.
type GamesView struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Total int        `json:"total"`
	Games []GameView `json:"games"`
}

// SearchView is the result of a catalog search.
type SearchView struct {
	Query string     `json:"query"`
	Total int        `json:"total"`
	Games []GameView `json:"games"`
}

// CreditView is one credited person.
type CreditView struct {
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	KnownFor []string `json:"known_for"`
}

// DetailView is the creative-staff detail of a game. A lookup that found
// nothing still yields this shape with empty lists.
type DetailView struct {
	Name         string       `json:"name"`
	Directors    []CreditView `json:"directors"`
	Writers      []CreditView `json:"writers"`
	Composers    []CreditView `json:"composers"`
	Producers    []CreditView `json:"producers"`
	Series       *string      `json:"series"`
	RelatedGames []string     `json:"related_games"`
	Highlights   []string     `json:"highlights"`
}

// NewDetailView converts fetched details to their API shape.
func NewDetailView(d *entities.GameDetails) DetailView {
	if d == nil {
		return EmptyDetailView("")
	}
	return DetailView{
		Name:         d.Name,
		Directors:    creditViews(d.Directors),
		Writers:      creditViews(d.Writers),
		Composers:    creditViews(d.Composers),
		Producers:    creditViews(d.Producers),
		Series:       optional(d.Series),
		RelatedGames: nonNil(d.RelatedGames),
		Highlights:   nonNil(d.Highlights),
	}
}

// EmptyDetailView is returned when no details could be found for name.
func EmptyDetailView(name string) DetailView {
	return DetailView{
		Name:         name,
		Directors:    []CreditView{},
		Writers:      []CreditView{},
		Composers:    []CreditView{},
		Producers:    []CreditView{},
		RelatedGames: []string{},
		Highlights:   []string{},
	}
}

// IsEmpty reports whether the view carries no credits or notes.
func (v DetailView) IsEmpty() bool {
	return len(v.Directors)+len(v.Writers)+len(v.Composers)+len(v.Producers) == 0 &&
		v.Series == nil && len(v.RelatedGames) == 0 && len(v.Highlights) == 0
}

// Credits returns the view's credits converted back to domain records, in
// role display order.
func (v DetailView) Credits() []entities.Credit {
	groups := [][]CreditView{v.Directors, v.Writers, v.Composers, v.Producers}
	var credits []entities.Credit
	for _, group := range groups {
		for _, c := range group {
			credit, err := entities.NewCredit(c.Name, entities.CreditRole(c.Role), c.KnownFor)
			if err != nil {
				continue
			}
			credits = append(credits, credit)
		}
	}
	return credits
}

func creditViews(credits []entities.Credit) []CreditView {
	views := make([]CreditView, 0, len(credits))
	for _, c := range credits {
		views = append(views, CreditView{
			Name:     c.Name,
			Role:     string(c.Role),
			KnownFor: nonNil(c.KnownFor),
		})
	}
	return views
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
