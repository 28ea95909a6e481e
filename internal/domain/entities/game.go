// Package entities contains core domain data structures.
package entities

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// CompanyRole selects which involvement flag to match when extracting companies.
type CompanyRole string

// Company roles recognised by the catalog.
const (
	RoleDeveloper CompanyRole = "developer"
	RolePublisher CompanyRole = "publisher"
)

// ReleaseDateLayout is the layout used for formatted release dates.
const ReleaseDateLayout = "2006-01-02"

const (
	thumbSegment = "t_thumb"
	coverSegment = "t_cover_big"
)

// Game is a read-only view of a catalog record.
// Every field is optional; accessors return the zero value when data is absent.
type Game struct {
	ID                int64             `json:"id,omitempty" yaml:"id,omitempty"`
	Name              string            `json:"name,omitempty" yaml:"name,omitempty"`
	FirstReleaseDate  *int64            `json:"first_release_date,omitempty" yaml:"first_release_date,omitempty"`
	Summary           string            `json:"summary,omitempty" yaml:"summary,omitempty"`
	Hypes             *int              `json:"hypes,omitempty" yaml:"hypes,omitempty"`
	InvolvedCompanies []InvolvedCompany `json:"involved_companies,omitempty" yaml:"involved_companies,omitempty"`
	Genres            []Genre           `json:"genres,omitempty" yaml:"genres,omitempty"`
	Cover             *Cover            `json:"cover,omitempty" yaml:"cover,omitempty"`
	AlternativeNames  []AlternativeName `json:"alternative_names,omitempty" yaml:"alternative_names,omitempty"`
	Platforms         []Platform        `json:"platforms,omitempty" yaml:"platforms,omitempty"`
	URL               string            `json:"url,omitempty" yaml:"url,omitempty"`
}

// InvolvedCompany links a game to a company with role flags.
type InvolvedCompany struct {
	Company   *Company `json:"company,omitempty" yaml:"company,omitempty"`
	Developer bool     `json:"developer,omitempty" yaml:"developer,omitempty"`
	Publisher bool     `json:"publisher,omitempty" yaml:"publisher,omitempty"`
}

// Company is a studio or publisher.
type Company struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Genre is a catalog genre.
type Genre struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Cover references the cover image of a game.
type Cover struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// AlternativeName is another title for a game, optionally annotated with
// a language or script in Comment.
type AlternativeName struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Platform is a catalog platform.
type Platform struct {
	ID   int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// UnmarshalJSON decodes a catalog record field by field. A mistyped field is
// left absent instead of failing the record, and with it the whole listing.
func (g *Game) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		*g = Game{}
		return nil
	}

	var out Game
	decoders := map[string]func(json.RawMessage){
		"id":                 func(raw json.RawMessage) { decodeField(raw, &out.ID) },
		"name":               func(raw json.RawMessage) { decodeField(raw, &out.Name) },
		"first_release_date": func(raw json.RawMessage) { decodeField(raw, &out.FirstReleaseDate) },
		"summary":            func(raw json.RawMessage) { decodeField(raw, &out.Summary) },
		"hypes":              func(raw json.RawMessage) { decodeField(raw, &out.Hypes) },
		"involved_companies": func(raw json.RawMessage) { decodeField(raw, &out.InvolvedCompanies) },
		"genres":             func(raw json.RawMessage) { decodeField(raw, &out.Genres) },
		"cover":              func(raw json.RawMessage) { decodeField(raw, &out.Cover) },
		"alternative_names":  func(raw json.RawMessage) { decodeField(raw, &out.AlternativeNames) },
		"platforms":          func(raw json.RawMessage) { decodeField(raw, &out.Platforms) },
		"url":                func(raw json.RawMessage) { decodeField(raw, &out.URL) },
	}
	for key, raw := range fields {
		if decode, ok := decoders[key]; ok {
			decode(raw)
		}
	}

	*g = out
	return nil
}

// decodeField stores raw into dst only when it decodes cleanly.
func decodeField[T any](raw json.RawMessage, dst *T) {
	var v T
	if err := json.Unmarshal(raw, &v); err == nil {
		*dst = v
	}
}

// UnmarshalJSON tolerates unexpanded references (bare ids) and mistyped fields.
func (ic *InvolvedCompany) UnmarshalJSON(data []byte) error {
	type plain InvolvedCompany
	return decodeObject(data, (*plain)(ic))
}

// UnmarshalJSON tolerates unexpanded references (bare ids) and mistyped fields.
func (c *Company) UnmarshalJSON(data []byte) error {
	type plain Company
	return decodeObject(data, (*plain)(c))
}

// UnmarshalJSON tolerates unexpanded references (bare ids) and mistyped fields.
func (g *Genre) UnmarshalJSON(data []byte) error {
	type plain Genre
	return decodeObject(data, (*plain)(g))
}

// UnmarshalJSON tolerates unexpanded references (bare ids) and mistyped fields.
func (c *Cover) UnmarshalJSON(data []byte) error {
	type plain Cover
	return decodeObject(data, (*plain)(c))
}

// UnmarshalJSON tolerates unexpanded references (bare ids) and mistyped fields.
func (a *AlternativeName) UnmarshalJSON(data []byte) error {
	type plain AlternativeName
	return decodeObject(data, (*plain)(a))
}

// UnmarshalJSON accepts either an expanded platform object or a bare id.
func (p *Platform) UnmarshalJSON(data []byte) error {
	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		p.ID = id
		return nil
	}
	type plain Platform
	return decodeObject(data, (*plain)(p))
}

// decodeObject decodes data into v only when it is a JSON object.
// Anything else leaves v at its zero value. The outer decoder has already
// validated the syntax, so field type mismatches are dropped silently.
func decodeObject(data []byte, v any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	_ = json.Unmarshal(trimmed, v)
	return nil
}

// Companies returns the comma-joined names of companies flagged with role,
// or "" when no involvement matches.
func (g *Game) Companies(role CompanyRole) string {
	return strings.Join(g.CompanyNames(role), ", ")
}

// CompanyNames returns the names of companies flagged with role.
func (g *Game) CompanyNames(role CompanyRole) []string {
	if g == nil {
		return nil
	}
	var names []string
	for _, ic := range g.InvolvedCompanies {
		if !ic.hasRole(role) || ic.Company == nil {
			continue
		}
		if name := strings.TrimSpace(ic.Company.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// AllCompanyNames returns every named company involved with the game, regardless of role.
func (g *Game) AllCompanyNames() []string {
	if g == nil {
		return nil
	}
	names := make([]string, 0, len(g.InvolvedCompanies))
	for _, ic := range g.InvolvedCompanies {
		if ic.Company == nil {
			continue
		}
		if name := strings.TrimSpace(ic.Company.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (ic InvolvedCompany) hasRole(role CompanyRole) bool {
	switch role {
	case RoleDeveloper:
		return ic.Developer
	case RolePublisher:
		return ic.Publisher
	default:
		return false
	}
}

// GenreNames returns the genre names, skipping malformed entries.
func (g *Game) GenreNames() []string {
	if g == nil {
		return nil
	}
	names := make([]string, 0, len(g.Genres))
	for _, genre := range g.Genres {
		if name := strings.TrimSpace(genre.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// CoverURL returns the high-resolution cover URL, or "" when absent.
func (g *Game) CoverURL() string {
	if g == nil || g.Cover == nil || g.Cover.URL == "" {
		return ""
	}
	return strings.ReplaceAll(g.Cover.URL, thumbSegment, coverSegment)
}

// ReleaseTime returns the first release time in UTC.
func (g *Game) ReleaseTime() (time.Time, bool) {
	if g == nil || g.FirstReleaseDate == nil || *g.FirstReleaseDate == 0 {
		return time.Time{}, false
	}
	return time.Unix(*g.FirstReleaseDate, 0).UTC(), true
}

// ReleaseDate returns the formatted first release date, or "" when absent.
func (g *Game) ReleaseDate() string {
	t, ok := g.ReleaseTime()
	if !ok {
		return ""
	}
	return t.Format(ReleaseDateLayout)
}

// HypeCount returns the hype count, treating a missing value as zero.
func (g *Game) HypeCount() int {
	if g == nil || g.Hypes == nil {
		return 0
	}
	return *g.Hypes
}

// OnPlatform reports whether the game lists platformID. Games without
// platform data are treated as matching.
func (g *Game) OnPlatform(platformID int64) bool {
	if g == nil {
		return false
	}
	if len(g.Platforms) == 0 || platformID == 0 {
		return true
	}
	for _, p := range g.Platforms {
		if p.ID == platformID {
			return true
		}
	}
	return false
}

// AlternativeNameFor returns the first alternative name whose comment mentions
// one of hints, or whose text contains a character of script. Returns "" if none.
func (g *Game) AlternativeNameFor(script Script, hints []string) string {
	if g == nil {
		return ""
	}
	for _, alt := range g.AlternativeNames {
		name := strings.TrimSpace(alt.Name)
		if name == "" {
			continue
		}
		comment := strings.ToLower(alt.Comment)
		for _, hint := range hints {
			if hint != "" && strings.Contains(comment, strings.ToLower(hint)) {
				return name
			}
		}
		if script.In(name) {
			return name
		}
	}
	return ""
}
