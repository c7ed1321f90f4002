package filter

import "geowatch/internal/domain/entity"

// MatchesRaid reports whether a raid satisfies one raid filter entry.
// Entries restricted to limited-access gyms only match raids hosted at
// such gyms; unrestricted entries match either kind.
func MatchesRaid(ev *entity.RaidEvent, f *entity.RaidFilter) bool {
	if !containsSpecies(f.SpeciesIDs, ev.BossID) || !matchesForm(f.Forms, ev.Form) {
		return false
	}

	return !f.LimitedAccessOnly || ev.LimitedAccess
}
