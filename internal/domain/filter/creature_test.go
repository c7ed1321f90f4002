package filter

import (
	"testing"

	"geowatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func perfectSighting() *entity.CreatureSighting {
	return &entity.CreatureSighting{
		SpeciesID:  25,
		Form:       "",
		Coordinate: entity.Coordinate{Latitude: 10.0, Longitude: 20.0},
		IVPercent:  100,
		Level:      30,
		Gender:     "m",
		Attack:     15,
		Defense:    15,
		Stamina:    15,
	}
}

func TestMatchesCreature_Thresholds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.CreatureSighting, *entity.CreatureFilter)
		want   bool
	}{
		{
			name:   "perfect sighting passes permissive entry",
			mutate: func(*entity.CreatureSighting, *entity.CreatureFilter) {},
			want:   true,
		},
		{
			name: "species not targeted",
			mutate: func(ev *entity.CreatureSighting, f *entity.CreatureFilter) {
				f.SpeciesIDs = []entity.SpeciesID{1, 2, 3}
			},
			want: false,
		},
		{
			name: "form restriction mismatch",
			mutate: func(ev *entity.CreatureSighting, f *entity.CreatureFilter) {
				f.Forms = []string{"alolan"}
			},
			want: false,
		},
		{
			name: "form restriction match is case-insensitive",
			mutate: func(ev *entity.CreatureSighting, f *entity.CreatureFilter) {
				ev.Form = "Alolan"
				f.Forms = []string{"alolan"}
			},
			want: true,
		},
		{
			name: "iv below minimum",
			mutate: func(ev *entity.CreatureSighting, f *entity.CreatureFilter) {
				ev.IVPercent = 89.9
			},
			want: false,
		},
		{
			name: "level below minimum",
			mutate: func(ev *entity.CreatureSighting, f *entity.CreatureFilter) {
				ev.Level = 0
				f.MinLevel = 1
			},
			want: false,
		},
		{
			name: "level above maximum",
			mutate: func(ev *entity.CreatureSighting, f *entity.CreatureFilter) {
				ev.Level = 41
			},
			want: false,
		},
		{
			name: "zero max level means unbounded",
			mutate: func(ev *entity.CreatureSighting, f *entity.CreatureFilter) {
				ev.Level = 50
				f.MaxLevel = 0
			},
			want: true,
		},
		{
			name: "gender mismatch",
			mutate: func(ev *entity.CreatureSighting, f *entity.CreatureFilter) {
				f.Gender = "f"
			},
			want: false,
		},
		{
			name: "wildcard gender matches anything",
			mutate: func(ev *entity.CreatureSighting, f *entity.CreatureFilter) {
				f.Gender = "*"
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := perfectSighting()
			f := &entity.CreatureFilter{
				SpeciesIDs: []entity.SpeciesID{25},
				MinIV:      90,
				MinLevel:   1,
				MaxLevel:   40,
				Gender:     "*",
			}
			tt.mutate(ev, f)

			assert.Equal(t, tt.want, MatchesCreature(ev, f))
		})
	}
}

func TestMatchesCreature_ExactStatsIgnoresThresholds(t *testing.T) {
	ev := perfectSighting()
	ev.Attack, ev.Defense, ev.Stamina = 14, 14, 14
	ev.IVPercent = 0 // would fail any threshold
	ev.Level = 0

	f := &entity.CreatureFilter{
		SpeciesIDs: []entity.SpeciesID{25},
		MinIV:      100,
		MinLevel:   35,
		MaxLevel:   40,
		ExactStats: true,
		StatCombos: []string{"14/14/14"},
	}

	assert.True(t, MatchesCreature(ev, f), "exact mode must bypass numeric thresholds")

	// Changing the thresholds must not change the outcome.
	f.MinIV = 0
	f.MinLevel = 0
	assert.True(t, MatchesCreature(ev, f))
}

func TestMatchesCreature_ExactStatsComboMiss(t *testing.T) {
	ev := perfectSighting() // observed 15/15/15
	f := &entity.CreatureFilter{
		SpeciesIDs: []entity.SpeciesID{25},
		ExactStats: true,
		StatCombos: []string{"14/14/14"},
	}

	assert.False(t, MatchesCreature(ev, f))
}
