package entity

import "strings"

// NamedLocation is a point plus a proximity radius in meters. A radius
// of zero or less disables the proximity rule for that location.
type NamedLocation struct {
	Name string `json:"name"`
	Coordinate
	RadiusM float64 `json:"radius_m"`
}

// Subscriber is one (guild, user) pair owning per-category filter
// entries. Subscriber values are treated as read-only snapshots for the
// duration of a dispatch pass.
type Subscriber struct {
	GuildID uint64 `json:"guild_id"`
	UserID  uint64 `json:"user_id"`

	// Location names the subscriber's global default location within
	// Locations; it applies to every filter entry.
	Location  string          `json:"location"`
	Locations []NamedLocation `json:"locations"`

	Creatures []CreatureFilter     `json:"creatures"`
	Battles   []RankedBattleFilter `json:"battles"`
	Raids     []RaidFilter         `json:"raids"`
	Quests    []QuestFilter        `json:"quests"`
	Invasions []InvasionFilter     `json:"invasions"`
	Lures     []LureFilter         `json:"lures"`
	Gyms      []GymFilter          `json:"gyms"`
}

// GlobalLocation resolves the subscriber's default named location, or
// nil when none is configured.
func (s *Subscriber) GlobalLocation() *NamedLocation {
	return s.LocationByName(s.Location)
}

// LocationByName resolves a named location case-insensitively, or nil.
func (s *Subscriber) LocationByName(name string) *NamedLocation {
	if name == "" {
		return nil
	}
	for i := range s.Locations {
		if strings.EqualFold(s.Locations[i].Name, name) {
			return &s.Locations[i]
		}
	}

	return nil
}

// CreatureFilter matches wild creature sightings. When ExactStats is
// set the numeric thresholds are bypassed entirely and only StatCombos
// membership decides the stat check; the two modes never combine.
type CreatureFilter struct {
	SpeciesIDs []SpeciesID `json:"species_ids"`
	Forms      []string    `json:"forms"`
	MinIV      float64     `json:"min_iv"`
	MinLevel   uint        `json:"min_level"`
	MaxLevel   uint        `json:"max_level"`
	Gender     string      `json:"gender"` // "m", "f" or "*"
	ExactStats bool        `json:"exact_stats"`
	StatCombos []string    `json:"stat_combos"` // "a/d/s" triples
	Location   string      `json:"location"`
	Areas      []string    `json:"areas"`
}

// RankedBattleFilter matches ranked-battle candidates for one league.
// MinPercentile is a whole-number threshold (e.g. 95 for top 5%).
type RankedBattleFilter struct {
	SpeciesIDs    []SpeciesID `json:"species_ids"`
	Forms         []string    `json:"forms"`
	League        League      `json:"league"`
	MaxRank       int         `json:"max_rank"`
	MinPercentile float64     `json:"min_percentile"`
	Location      string      `json:"location"`
	Areas         []string    `json:"areas"`
}

// RaidFilter matches raid events by boss species.
type RaidFilter struct {
	SpeciesIDs        []SpeciesID `json:"species_ids"`
	Forms             []string    `json:"forms"`
	LimitedAccessOnly bool        `json:"limited_access_only"`
	Location          string      `json:"location"`
	Areas             []string    `json:"areas"`
}

// QuestFilter matches quests whose derived reward keyword contains the
// configured keyword (case-insensitive substring).
type QuestFilter struct {
	RewardKeyword string   `json:"reward_keyword"`
	Location      string   `json:"location"`
	Areas         []string `json:"areas"`
}

// InvasionFilter matches invasions whose derived encounter-reward set
// intersects RewardSpeciesIDs.
type InvasionFilter struct {
	RewardSpeciesIDs []SpeciesID `json:"reward_species_ids"`
	Location         string      `json:"location"`
	Areas            []string    `json:"areas"`
}

// LureFilter matches lures by exact type equality.
type LureFilter struct {
	LureType LureType `json:"lure_type"`
	Location string   `json:"location"`
	Areas    []string `json:"areas"`
}

// GymFilter matches gym state changes for one named gym. The entry is
// satisfied when both level bounds are configured, or when the occupant
// species is listed.
type GymFilter struct {
	Name              string      `json:"name"`
	MinLevel          uint        `json:"min_level"`
	MaxLevel          uint        `json:"max_level"`
	SpeciesIDs        []SpeciesID `json:"species_ids"`
	LimitedAccessOnly bool        `json:"limited_access_only"`
	Location          string      `json:"location"`
	Areas             []string    `json:"areas"`
}
