// Package catalog loads the static master reference data (species and
// invasion encounter rewards) from a JSON file at startup.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/service"
)

type speciesEntry struct {
	Name string `json:"name"`
	// Forms maps a form identifier to its display name. Optional.
	Forms map[string]string `json:"forms,omitempty"`
}

type masterFile struct {
	Species map[entity.SpeciesID]speciesEntry `json:"species"`
	// Grunts maps a grunt type to the species its encounters can reward.
	Grunts map[entity.GruntType][]entity.SpeciesID `json:"grunts"`
}

type catalog struct {
	species map[entity.SpeciesID]speciesEntry
	grunts  map[entity.GruntType][]entity.SpeciesID
}

// Load reads and decodes the master file at path.
func Load(path string) (service.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read master file %s", path)
	}

	var master masterFile
	if err := json.Unmarshal(raw, &master); err != nil {
		return nil, errors.Wrapf(err, "decode master file %s", path)
	}
	if len(master.Species) == 0 {
		return nil, errors.Errorf("master file %s lists no species", path)
	}

	return &catalog{species: master.Species, grunts: master.Grunts}, nil
}

func (c *catalog) HasSpecies(id entity.SpeciesID) bool {
	_, ok := c.species[id]

	return ok
}

// SpeciesName returns the display name for a species and optional form.
// Unknown identifiers fall back to a numeric placeholder so rendering
// never fails on stale data.
func (c *catalog) SpeciesName(id entity.SpeciesID, form string) string {
	entry, ok := c.species[id]
	if !ok {
		return fmt.Sprintf("#%d", id)
	}
	if form == "" {
		return entry.Name
	}
	for key, display := range entry.Forms {
		if strings.EqualFold(key, form) {
			return fmt.Sprintf("%s (%s)", entry.Name, display)
		}
	}

	return fmt.Sprintf("%s (%s)", entry.Name, form)
}

func (c *catalog) EncounterRewards(grunt entity.GruntType) ([]entity.SpeciesID, bool) {
	rewards, ok := c.grunts[grunt]
	if !ok || len(rewards) == 0 {
		return nil, false
	}

	return rewards, true
}
