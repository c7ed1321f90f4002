package filter

import (
	"strings"

	"geowatch/internal/domain/entity"
)

// MatchesGym reports whether a gym state change satisfies one gym
// filter entry. The entry targets a single gym by name; it is satisfied
// when both level bounds are configured or when the occupant species is
// listed, and, if the entry restricts to limited-access gyms, the gym
// must be so eligible.
func MatchesGym(ev *entity.GymStateEvent, f *entity.GymFilter) bool {
	if !strings.EqualFold(f.Name, ev.GymName) {
		return false
	}

	levelsConfigured := f.MinLevel > 0 && f.MaxLevel > 0
	if !levelsConfigured && !containsSpecies(f.SpeciesIDs, ev.OccupantID) {
		return false
	}

	return !f.LimitedAccessOnly || ev.LimitedAccess
}
