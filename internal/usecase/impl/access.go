package impl

import "geowatch/internal/domain/entity"

// hasBaselineAccess reports whether the member holds at least one role
// present in the guild's entitlement map. The map's key set doubles as
// the guild's supporter role set; members failing this check are skipped
// for every category.
func hasBaselineAccess(roles []uint64, entitlements map[uint64][]entity.Category) bool {
	for _, role := range roles {
		if _, ok := entitlements[role]; ok {
			return true
		}
	}

	return false
}

// hasCategoryAccess reports whether the union of categories unlocked by
// the member's held roles contains the requested category.
func hasCategoryAccess(roles []uint64, entitlements map[uint64][]entity.Category, category entity.Category) bool {
	for _, role := range roles {
		for _, unlocked := range entitlements[role] {
			if unlocked == category {
				return true
			}
		}
	}

	return false
}
