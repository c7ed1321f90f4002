package impl

import (
	"testing"

	"geowatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestHasBaselineAccess(t *testing.T) {
	entitlements := map[uint64][]entity.Category{
		10: {entity.CategoryCreature},
		11: {entity.CategoryRaid, entity.CategoryGym},
	}

	assert.True(t, hasBaselineAccess([]uint64{10}, entitlements))
	assert.True(t, hasBaselineAccess([]uint64{99, 11}, entitlements))
	assert.False(t, hasBaselineAccess([]uint64{99}, entitlements))
	assert.False(t, hasBaselineAccess(nil, entitlements))
	assert.False(t, hasBaselineAccess([]uint64{10}, nil))
}

func TestHasCategoryAccess(t *testing.T) {
	entitlements := map[uint64][]entity.Category{
		10: {entity.CategoryCreature},
		11: {entity.CategoryRaid, entity.CategoryGym},
	}

	assert.True(t, hasCategoryAccess([]uint64{10}, entitlements, entity.CategoryCreature))
	assert.True(t, hasCategoryAccess([]uint64{10, 11}, entitlements, entity.CategoryGym))
	assert.False(t, hasCategoryAccess([]uint64{10}, entitlements, entity.CategoryRaid))
	assert.False(t, hasCategoryAccess([]uint64{99}, entitlements, entity.CategoryCreature))
}
