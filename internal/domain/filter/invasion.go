package filter

import "geowatch/internal/domain/entity"

// MatchesInvasion reports whether the invasion's derived
// encounter-reward set intersects the entry's reward species set.
func MatchesInvasion(rewards []entity.SpeciesID, f *entity.InvasionFilter) bool {
	for _, id := range rewards {
		if containsSpecies(f.RewardSpeciesIDs, id) {
			return true
		}
	}

	return false
}
