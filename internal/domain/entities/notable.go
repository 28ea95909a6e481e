package entities

import (
	"strings"

	"golang.org/x/text/cases"
)

// DefaultHypeThreshold is the hype count at which a game is notable on buzz alone.
const DefaultHypeThreshold = 10

// NotableDevelopers is an immutable allow-list of well-known studios and publishers.
type NotableDevelopers struct {
	names  []string
	folded []string
}

// NewNotableDevelopers builds an allow-list from names, dropping blanks and duplicates.
func NewNotableDevelopers(names ...string) NotableDevelopers {
	fold := cases.Fold()
	seen := make(map[string]struct{}, len(names))
	nd := NotableDevelopers{
		names:  make([]string, 0, len(names)),
		folded: make([]string, 0, len(names)),
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := fold.String(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		nd.names = append(nd.names, name)
		nd.folded = append(nd.folded, key)
	}
	return nd
}

// With returns a new allow-list extended with extra names.
func (nd NotableDevelopers) With(extra ...string) NotableDevelopers {
	all := make([]string, 0, len(nd.names)+len(extra))
	all = append(all, nd.names...)
	all = append(all, extra...)
	return NewNotableDevelopers(all...)
}

// Names returns a copy of the allow-list entries.
func (nd NotableDevelopers) Names() []string {
	out := make([]string, len(nd.names))
	copy(out, nd.names)
	return out
}

// Len returns the number of entries.
func (nd NotableDevelopers) Len() int {
	return len(nd.names)
}

// Matches reports whether company is an entry's substring or contains one,
// ignoring case. An empty company name never matches.
func (nd NotableDevelopers) Matches(company string) bool {
	company = strings.TrimSpace(company)
	if company == "" {
		return false
	}
	c := cases.Fold().String(company)
	for _, entry := range nd.folded {
		if strings.Contains(c, entry) || strings.Contains(entry, c) {
			return true
		}
	}
	return false
}

// DefaultNotableDevelopers returns the built-in allow-list.
func DefaultNotableDevelopers() NotableDevelopers {
	return NewNotableDevelopers(
		// Japan
		"Nintendo", "Nintendo EPD", "Nintendo EAD",
		"Square Enix", "Square", "Enix",
		"Bandai Namco", "Bandai Namco Entertainment", "Bandai Namco Studios",
		"Capcom",
		"Konami", "Konami Digital Entertainment",
		"SEGA",
		"Atlus",
		"Koei Tecmo", "Koei Tecmo Games", "Omega Force", "Team Ninja",
		"Level-5", "Level5",
		"FromSoftware", "From Software",
		"PlatinumGames", "Platinum Games",
		"Falcom", "Nihon Falcom",
		"NIS", "Nippon Ichi Software",
		"Arc System Works",
		"Spike Chunsoft",
		"Grasshopper Manufacture",
		"Vanillaware",
		"Game Freak",
		"HAL Laboratory",
		"Intelligent Systems",
		"Monolith Soft",
		"Retro Studios",
		// Western publishers
		"Ubisoft", "Ubisoft Montreal", "Ubisoft Paris",
		"Electronic Arts", "EA", "EA Sports",
		"Activision", "Activision Blizzard",
		"Blizzard", "Blizzard Entertainment",
		"Bethesda", "Bethesda Game Studios", "Bethesda Softworks",
		"2K Games", "2K", "Firaxis Games",
		"Rockstar Games", "Rockstar North",
		"Warner Bros", "WB Games",
		"CD Projekt", "CD Projekt Red",
		"Devolver Digital",
		"505 Games",
		"THQ Nordic",
		// Independent studios
		"Team Cherry",
		"Supergiant Games",
		"Moon Studios",
		"Yacht Club Games",
		"Motion Twin",
		"ConcernedApe",
	)
}
