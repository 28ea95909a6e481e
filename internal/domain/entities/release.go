package entities

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Well-known catalog platform ids.
const (
	PlatformPC          int64 = 6
	PlatformSwitch      int64 = 130
	PlatformPS5         int64 = 167
	PlatformXboxSeries  int64 = 169
	DefaultPlatformName       = "switch"
)

var platformIDs = map[string]int64{
	"pc":          PlatformPC,
	"switch":      PlatformSwitch,
	"ps5":         PlatformPS5,
	"xbox-series": PlatformXboxSeries,
}

// PlatformID resolves a platform name to its catalog id.
func PlatformID(name string) (int64, error) {
	id, ok := platformIDs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown platform %q (known: %s)", name, strings.Join(PlatformNames(), ", "))
	}
	return id, nil
}

// PlatformNames returns the known platform names, sorted.
func PlatformNames() []string {
	names := make([]string, 0, len(platformIDs))
	for name := range platformIDs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReleaseWindow returns the half-open interval [start of month, start of next month) in UTC.
func ReleaseWindow(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// ReleaseQuery selects the games released on a platform during one month.
type ReleaseQuery struct {
	Year       int
	Month      int
	Limit      int
	PlatformID int64
}

// Validate checks the month and limit ranges.
func (q ReleaseQuery) Validate() error {
	if q.Month < 1 || q.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", q.Month)
	}
	if q.Year < 1970 || q.Year > 9999 {
		return fmt.Errorf("year out of range: %d", q.Year)
	}
	if q.Limit < 1 || q.Limit > MaxReleaseLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxReleaseLimit, q.Limit)
	}
	return nil
}

// Window returns the release window for the query.
func (q ReleaseQuery) Window() (time.Time, time.Time) {
	return ReleaseWindow(q.Year, q.Month)
}

// Release query limits.
const (
	DefaultReleaseLimit = 50
	MaxReleaseLimit     = 100
)

// ReleaseEntry is a catalog game merged with its localized name and notability flag.
type ReleaseEntry struct {
	Game          *Game
	LocalizedName string
	Notable       bool
}

// DisplayName returns the localized name when there is one, else the English name.
func (e ReleaseEntry) DisplayName() string {
	if e.LocalizedName != "" {
		return e.LocalizedName
	}
	if e.Game == nil {
		return ""
	}
	return e.Game.Name
}
