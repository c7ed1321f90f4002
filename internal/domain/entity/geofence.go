package entity

import "github.com/paulmach/orb"

// Geofence is a named polygon region scoped to one guild. A guild's
// geofences form an ordered list resolved first-match-wins.
type Geofence struct {
	Name     string
	Boundary orb.Polygon
}
