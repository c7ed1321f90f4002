package entity

import (
	"fmt"

	"github.com/paulmach/orb"
)

// SpeciesID identifies a creature species in the master catalog.
type SpeciesID uint32

// GruntType identifies the invasion grunt archetype; encounter rewards
// are derived from it through the master catalog.
type GruntType uint32

// LureType identifies the module type attached to a pokestop.
type LureType string

const (
	LureNormal   LureType = "normal"
	LureGlacial  LureType = "glacial"
	LureMossy    LureType = "mossy"
	LureMagnetic LureType = "magnetic"
	LureRainy    LureType = "rainy"
)

// Coordinate is a WGS84 point. Longitude/latitude order follows the
// wire payloads; Point converts to orb's (lon, lat) convention.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Event is the common surface of all incoming game-state events. Events
// are read-only snapshots consumed by exactly one dispatch pass.
type Event interface {
	Category() Category
	Coord() Coordinate
}

// CreatureSighting reports a wild creature spawn.
type CreatureSighting struct {
	SpeciesID SpeciesID
	Form      string
	Coordinate
	IVPercent float64 // 0..100
	Level     uint
	Gender    string // "m", "f" or "" when unknown
	Attack    uint
	Defense   uint
	Stamina   uint
}

func (e *CreatureSighting) Category() Category { return CategoryCreature }
func (e *CreatureSighting) Coord() Coordinate  { return e.Coordinate }

// StatCombo renders the observed attack/defense/stamina triple in the
// "a/d/s" form used by exact-combination allow-lists.
func (e *CreatureSighting) StatCombo() string {
	return fmt.Sprintf("%d/%d/%d", e.Attack, e.Defense, e.Stamina)
}

// League is a ranked-battle bucket with a fixed valid CP band.
type League string

const (
	LeagueGreat League = "great"
	LeagueUltra League = "ultra"
)

// CPBand returns the inclusive CP range a candidate must fall in to be
// a valid entrant for the league.
func (l League) CPBand() (minCP, maxCP int) {
	switch l {
	case LeagueGreat:
		return 1400, 1500
	case LeagueUltra:
		return 2400, 2500
	default:
		return 0, 0
	}
}

// LeagueRanking is one simulated ranked-battle result for a candidate.
// Percentile is stored as a fraction in [0, 1]; the matcher normalizes
// it against whole-number subscriber thresholds.
type LeagueRanking struct {
	League     League
	CP         int
	Rank       int
	Percentile float64
}

// RankedBattleCandidate reports a spawn whose stats make it a ranked
// battle contender in one or more leagues.
type RankedBattleCandidate struct {
	SpeciesID SpeciesID
	Form      string
	Coordinate
	Rankings []LeagueRanking
}

func (e *RankedBattleCandidate) Category() Category { return CategoryRankedBattle }
func (e *RankedBattleCandidate) Coord() Coordinate  { return e.Coordinate }

// RaidEvent reports a timed raid hatching at a gym. LimitedAccess marks
// gyms eligible for limited-access raid passes.
type RaidEvent struct {
	BossID  SpeciesID
	Form    string
	GymName string
	Coordinate
	LimitedAccess bool
}

func (e *RaidEvent) Category() Category { return CategoryRaid }
func (e *RaidEvent) Coord() Coordinate  { return e.Coordinate }

// QuestEvent reports a special task appearing at a pokestop.
// RewardKeyword is the display string derived from the structured
// reward list by the feed decoder; matching is substring containment
// against it.
type QuestEvent struct {
	PokestopID    string
	PokestopName  string
	RewardKeyword string
	Coordinate
}

func (e *QuestEvent) Category() Category { return CategoryQuest }
func (e *QuestEvent) Coord() Coordinate  { return e.Coordinate }

// InvasionEvent reports a grunt takeover of a pokestop. The encounter
// reward species set is derived from GruntType via the master catalog.
type InvasionEvent struct {
	PokestopName string
	GruntType    GruntType
	Coordinate
}

func (e *InvasionEvent) Category() Category { return CategoryInvasion }
func (e *InvasionEvent) Coord() Coordinate  { return e.Coordinate }

// LureEvent reports a lure module activated at a pokestop.
type LureEvent struct {
	PokestopName string
	LureType     LureType
	Coordinate
}

func (e *LureEvent) Category() Category { return CategoryLure }
func (e *LureEvent) Coord() Coordinate  { return e.Coordinate }

// GymStateEvent reports a gym occupant change.
type GymStateEvent struct {
	GymName    string
	OccupantID SpeciesID
	Form       string
	Coordinate
	LimitedAccess bool
}

func (e *GymStateEvent) Category() Category { return CategoryGym }
func (e *GymStateEvent) Coord() Coordinate  { return e.Coordinate }
