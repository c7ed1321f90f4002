package impl

import (
	"strings"

	"geowatch/internal/domain/entity"
	"geowatch/internal/infra/geo"
)

// allows applies the location gate for one filter entry: the
// subscriber's global location radius, the entry's own location radius,
// or the resolved region appearing in the entry's area list. The three
// checks are independent; any one satisfies the gate. A nil region only
// falsifies the area check.
func (p *eventPass) allows(sub *entity.Subscriber, entryLocation string, areas []string, region *entity.Geofence) bool {
	if geo.WithinRadius(sub.GlobalLocation(), p.point) {
		return true
	}
	if geo.WithinRadius(sub.LocationByName(entryLocation), p.point) {
		return true
	}
	if region != nil {
		for _, area := range areas {
			if strings.EqualFold(area, region.Name) {
				return true
			}
		}
	}

	return false
}
