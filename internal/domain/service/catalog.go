package service

import "geowatch/internal/domain/entity"

// Catalog is the static master reference data: known species and the
// encounter rewards derived from invasion grunt types. An event whose
// identifiers are unknown to the catalog cannot be matched and aborts
// its dispatch pass before any subscriber work.
type Catalog interface {
	HasSpecies(id entity.SpeciesID) bool
	SpeciesName(id entity.SpeciesID, form string) string
	EncounterRewards(grunt entity.GruntType) ([]entity.SpeciesID, bool)
}
