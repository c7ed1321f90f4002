package filter

import "geowatch/internal/domain/entity"

// MatchesLure is exact lure-type equality.
func MatchesLure(ev *entity.LureEvent, f *entity.LureFilter) bool {
	return f.LureType == ev.LureType
}
