// Package geo implements point-in-polygon geofence resolution and
// great-circle proximity checks on top of paulmach/orb.
package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"

	"geowatch/internal/domain/entity"
)

// ResolveGeofence returns the first geofence, in configured order,
// whose polygon contains the point, or nil when none does. Resolution
// is pure; callers own any memoization.
func ResolveGeofence(fences []entity.Geofence, point orb.Point) *entity.Geofence {
	for i := range fences {
		if planar.PolygonContains(fences[i].Boundary, point) {
			return &fences[i]
		}
	}

	return nil
}

// WithinRadius reports whether the point lies strictly inside the named
// location's radius. An absent location or a non-positive radius never
// matches. Distance is great-circle meters.
func WithinRadius(loc *entity.NamedLocation, point orb.Point) bool {
	if loc == nil || loc.RadiusM <= 0 {
		return false
	}

	return orbgeo.Distance(loc.Point(), point) < loc.RadiusM
}
