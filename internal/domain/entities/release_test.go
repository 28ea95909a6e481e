package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseWindow(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		start time.Time
		end   time.Time
	}{
		{
			name: "mid year", year: 2025, month: 6,
			start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "december rolls into next year", year: 2025, month: 12,
			start: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ReleaseWindow(tt.year, tt.month)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestReleaseQuery_Validate(t *testing.T) {
	valid := ReleaseQuery{Year: 2025, Month: 3, Limit: 50}
	assert.NoError(t, valid.Validate())

	for _, q := range []ReleaseQuery{
		{Year: 2025, Month: 0, Limit: 50},
		{Year: 2025, Month: 13, Limit: 50},
		{Year: 2025, Month: 3, Limit: 0},
		{Year: 2025, Month: 3, Limit: 101},
		{Year: 1900, Month: 3, Limit: 10},
	} {
		assert.Error(t, q.Validate(), "%+v", q)
	}
}

func TestPlatformID(t *testing.T) {
	id, err := PlatformID("Switch")
	require.NoError(t, err)
	assert.Equal(t, PlatformSwitch, id)

	_, err = PlatformID("dreamcast")
	assert.Error(t, err)
	assert.Equal(t, []string{"pc", "ps5", "switch", "xbox-series"}, PlatformNames())
}

func TestReleaseEntry_DisplayName(t *testing.T) {
	g := &Game{Name: "Pikmin 4"}
	assert.Equal(t, "Pikmin 4", ReleaseEntry{Game: g}.DisplayName())
	assert.Equal(t, "皮克敏4", ReleaseEntry{Game: g, LocalizedName: "皮克敏4"}.DisplayName())
}
