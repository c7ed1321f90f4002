package filter

import "geowatch/internal/domain/entity"

// MatchesCreature reports whether a sighting satisfies one creature
// filter entry. With ExactStats set the numeric IV/level/gender
// thresholds are ignored entirely and only allow-list membership of
// the observed attack/defense/stamina triple decides the stat check.
func MatchesCreature(ev *entity.CreatureSighting, f *entity.CreatureFilter) bool {
	if !containsSpecies(f.SpeciesIDs, ev.SpeciesID) || !matchesForm(f.Forms, ev.Form) {
		return false
	}

	if f.ExactStats {
		for _, combo := range f.StatCombos {
			if combo == ev.StatCombo() {
				return true
			}
		}

		return false
	}

	if ev.IVPercent < f.MinIV || ev.IVPercent > 100 {
		return false
	}
	if ev.Level < f.MinLevel || (f.MaxLevel > 0 && ev.Level > f.MaxLevel) {
		return false
	}

	return matchesGender(ev.Gender, f.Gender)
}
