package filter

import "geowatch/internal/domain/entity"

// worstRank stands in for an absent rank so that unranked results never
// satisfy a maximum-rank threshold.
const worstRank = 4096

// MatchesRankedBattle reports whether any simulated ranking of the
// candidate satisfies the entry, within the entry's league only. A
// ranking counts when its CP falls inside the league's fixed band, its
// rank is at or under the entry maximum and its percentile is at or
// over the entry minimum.
//
// Event percentiles arrive as fractions in [0, 1]; entry thresholds are
// whole numbers. The x100 normalization happens here and nowhere else.
func MatchesRankedBattle(ev *entity.RankedBattleCandidate, f *entity.RankedBattleFilter) bool {
	if !containsSpecies(f.SpeciesIDs, ev.SpeciesID) || !matchesForm(f.Forms, ev.Form) {
		return false
	}

	minCP, maxCP := f.League.CPBand()
	for _, r := range ev.Rankings {
		if r.League != f.League {
			continue
		}
		if r.CP < minCP || r.CP > maxCP {
			continue
		}
		rank := r.Rank
		if rank <= 0 {
			rank = worstRank
		}
		if rank <= f.MaxRank && r.Percentile*100 >= f.MinPercentile {
			return true
		}
	}

	return false
}
