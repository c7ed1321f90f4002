package guildconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"geowatch/internal/domain/entity"
	"geowatch/internal/infra/geo"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsYAML = `
guilds:
  - id: 100
    subscriptions_enabled: true
    has_active_client: true
    geofences:
      - name: Downtown
        ring:
          - [9.5, 19.5]
          - [9.5, 20.5]
          - [10.5, 20.5]
          - [10.5, 19.5]
    entitlements:
      "555": [creature, raid]
      "556": [quest]
    members:
      "42": ["555"]
      "43": []
  - id: 200
    subscriptions_enabled: false
    has_active_client: true
`

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guilds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Settings(t *testing.T) {
	store, err := Load(writeSettings(t, settingsYAML))
	require.NoError(t, err)

	settings, ok := store.Settings(100)
	require.True(t, ok)
	assert.True(t, settings.SubscriptionsEnabled)
	assert.True(t, settings.HasActiveClient)
	assert.Equal(t, []entity.Category{entity.CategoryCreature, entity.CategoryRaid}, settings.Entitlements[555])

	disabled, ok := store.Settings(200)
	require.True(t, ok)
	assert.False(t, disabled.SubscriptionsEnabled)

	_, ok = store.Settings(999)
	assert.False(t, ok)
}

func TestLoad_GeofenceRingIsClosedAndResolvable(t *testing.T) {
	store, err := Load(writeSettings(t, settingsYAML))
	require.NoError(t, err)

	settings, ok := store.Settings(100)
	require.True(t, ok)
	require.Len(t, settings.Geofences, 1)

	ring := settings.Geofences[0].Boundary[0]
	assert.Equal(t, ring[0], ring[len(ring)-1])

	// Ring pairs are [lat, lon]; points are (lon, lat).
	inside := orb.Point{20.0, 10.0}
	got := geo.ResolveGeofence(settings.Geofences, inside)
	require.NotNil(t, got)
	assert.Equal(t, "Downtown", got.Name)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing guild id", "guilds:\n  - subscriptions_enabled: true\n"},
		{"unnamed geofence", "guilds:\n  - id: 1\n    geofences:\n      - ring: [[0,0],[0,1],[1,1]]\n"},
		{"degenerate ring", "guilds:\n  - id: 1\n    geofences:\n      - name: X\n        ring: [[0,0],[0,1]]\n"},
		{"bad role id", "guilds:\n  - id: 1\n    entitlements:\n      abc: [creature]\n"},
		{"unknown category", "guilds:\n  - id: 1\n    entitlements:\n      \"5\": [dragon]\n"},
		{"bad member id", "guilds:\n  - id: 1\n    members:\n      abc: []\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeSettings(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestResolveMember(t *testing.T) {
	store, err := Load(writeSettings(t, settingsYAML))
	require.NoError(t, err)

	member, err := store.ResolveMember(context.Background(), 100, 42)
	require.NoError(t, err)
	assert.Equal(t, []uint64{555}, member.Roles)

	roleless, err := store.ResolveMember(context.Background(), 100, 43)
	require.NoError(t, err)
	assert.Empty(t, roleless.Roles)

	_, err = store.ResolveMember(context.Background(), 100, 99)
	assert.ErrorIs(t, err, ErrMemberNotFound)

	_, err = store.ResolveMember(context.Background(), 300, 42)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
