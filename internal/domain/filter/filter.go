// Package filter holds the pure per-category predicates evaluated
// against (event, filter entry) pairs. Predicates never touch
// collaborators and never consider location; the location gate is
// applied by the dispatcher after a predicate passes.
package filter

import (
	"strings"

	"geowatch/internal/domain/entity"
)

// containsSpecies reports membership of id in the entry's target set.
func containsSpecies(ids []entity.SpeciesID, id entity.SpeciesID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}

// matchesForm treats an empty form restriction as "any form".
func matchesForm(forms []string, form string) bool {
	if len(forms) == 0 {
		return true
	}
	for _, f := range forms {
		if strings.EqualFold(f, form) {
			return true
		}
	}

	return false
}

func matchesGender(observed, wanted string) bool {
	return wanted == "" || wanted == "*" || strings.EqualFold(observed, wanted)
}
