package filter

import (
	"testing"

	"geowatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestMatchesRankedBattle(t *testing.T) {
	candidate := func(rankings ...entity.LeagueRanking) *entity.RankedBattleCandidate {
		return &entity.RankedBattleCandidate{
			SpeciesID: 618,
			Rankings:  rankings,
		}
	}
	entry := &entity.RankedBattleFilter{
		SpeciesIDs:    []entity.SpeciesID{618},
		League:        entity.LeagueGreat,
		MaxRank:       25,
		MinPercentile: 95,
	}

	tests := []struct {
		name string
		ev   *entity.RankedBattleCandidate
		want bool
	}{
		{
			name: "in-band rank and percentile pass",
			ev:   candidate(entity.LeagueRanking{League: entity.LeagueGreat, CP: 1493, Rank: 1, Percentile: 1.0}),
			want: true,
		},
		{
			name: "cp below league band",
			ev:   candidate(entity.LeagueRanking{League: entity.LeagueGreat, CP: 1399, Rank: 1, Percentile: 1.0}),
			want: false,
		},
		{
			name: "cp above league band",
			ev:   candidate(entity.LeagueRanking{League: entity.LeagueGreat, CP: 1501, Rank: 1, Percentile: 1.0}),
			want: false,
		},
		{
			name: "rank over entry maximum",
			ev:   candidate(entity.LeagueRanking{League: entity.LeagueGreat, CP: 1500, Rank: 26, Percentile: 1.0}),
			want: false,
		},
		{
			name: "fractional percentile is scaled before comparison",
			ev:   candidate(entity.LeagueRanking{League: entity.LeagueGreat, CP: 1500, Rank: 10, Percentile: 0.951}),
			want: true,
		},
		{
			name: "percentile below threshold",
			ev:   candidate(entity.LeagueRanking{League: entity.LeagueGreat, CP: 1500, Rank: 10, Percentile: 0.94}),
			want: false,
		},
		{
			name: "wrong league ranking is ignored",
			ev:   candidate(entity.LeagueRanking{League: entity.LeagueUltra, CP: 2500, Rank: 1, Percentile: 1.0}),
			want: false,
		},
		{
			name: "unset rank defaults to worst",
			ev:   candidate(entity.LeagueRanking{League: entity.LeagueGreat, CP: 1500, Rank: 0, Percentile: 1.0}),
			want: false,
		},
		{
			name: "any one ranking suffices",
			ev: candidate(
				entity.LeagueRanking{League: entity.LeagueGreat, CP: 1399, Rank: 1, Percentile: 1.0},
				entity.LeagueRanking{League: entity.LeagueGreat, CP: 1450, Rank: 5, Percentile: 0.99},
			),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesRankedBattle(tt.ev, entry))
		})
	}
}

func TestMatchesRankedBattle_SpeciesMismatch(t *testing.T) {
	ev := &entity.RankedBattleCandidate{
		SpeciesID: 1,
		Rankings:  []entity.LeagueRanking{{League: entity.LeagueGreat, CP: 1500, Rank: 1, Percentile: 1.0}},
	}
	f := &entity.RankedBattleFilter{
		SpeciesIDs:    []entity.SpeciesID{618},
		League:        entity.LeagueGreat,
		MaxRank:       100,
		MinPercentile: 0,
	}

	assert.False(t, MatchesRankedBattle(ev, f))
}
