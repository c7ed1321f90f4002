package render

import (
	"context"
	"fmt"
	"testing"

	"geowatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct{}

func (stubCatalog) HasSpecies(entity.SpeciesID) bool { return true }

func (stubCatalog) SpeciesName(id entity.SpeciesID, form string) string {
	if form != "" {
		return fmt.Sprintf("Species%d (%s)", id, form)
	}

	return fmt.Sprintf("Species%d", id)
}

func (stubCatalog) EncounterRewards(entity.GruntType) ([]entity.SpeciesID, bool) {
	return nil, false
}

func TestRender_CreatureSighting(t *testing.T) {
	r := NewRenderer(stubCatalog{})

	ev := &entity.CreatureSighting{
		SpeciesID:  25,
		Coordinate: entity.Coordinate{Latitude: 10.12345, Longitude: 20.54321},
		IVPercent:  98.5,
		Level:      30,
		Attack:     15,
		Defense:    14,
		Stamina:    15,
	}

	parts, err := r.Render(context.Background(), ev, nil, "Park")
	require.NoError(t, err)
	require.Len(t, parts, 1)

	assert.Equal(t, "Species25 spotted", parts[0].Title)
	assert.Contains(t, parts[0].Body, "L30 98.5% (15/14/15)")
	assert.Contains(t, parts[0].Body, "10.12345, 20.54321")
	assert.Contains(t, parts[0].Body, "Area: Park")
}

func TestRender_NoRegionOmitsAreaLine(t *testing.T) {
	r := NewRenderer(stubCatalog{})

	ev := &entity.RaidEvent{
		BossID:     150,
		GymName:    "Plaza",
		Coordinate: entity.Coordinate{Latitude: 1, Longitude: 2},
	}

	parts, err := r.Render(context.Background(), ev, nil, "")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.NotContains(t, parts[0].Body, "Area:")
	assert.Contains(t, parts[0].Title, "raid")
}

func TestRender_RankedBattlePicksBestRank(t *testing.T) {
	r := NewRenderer(stubCatalog{})

	ev := &entity.RankedBattleCandidate{
		SpeciesID:  26,
		Coordinate: entity.Coordinate{Latitude: 1, Longitude: 2},
		Rankings: []entity.LeagueRanking{
			{League: entity.LeagueUltra, CP: 2450, Rank: 120, Percentile: 0.97},
			{League: entity.LeagueGreat, CP: 1498, Rank: 3, Percentile: 0.999},
		},
	}

	parts, err := r.Render(context.Background(), ev, nil, "")
	require.NoError(t, err)
	assert.Contains(t, parts[0].Body, "rank 3")
	assert.Contains(t, parts[0].Body, "great league")
}

func TestRender_UnknownEventType(t *testing.T) {
	r := NewRenderer(stubCatalog{})

	_, err := r.Render(context.Background(), nil, nil, "")
	require.Error(t, err)
}
