// Package guildconfig loads per-guild settings (geofences, role
// entitlements, administrative flags) from a YAML file at startup and
// serves immutable snapshots to the dispatchers.
package guildconfig

import (
	"context"
	"os"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/service"
)

type geofenceFile struct {
	Name string `yaml:"name"`
	// Ring is the outer boundary as [lat, lon] pairs. The ring may be
	// left open; it is closed on load.
	Ring [][2]float64 `yaml:"ring"`
}

type guildFile struct {
	ID                   uint64                        `yaml:"id"`
	SubscriptionsEnabled bool                          `yaml:"subscriptions_enabled"`
	HasActiveClient      bool                          `yaml:"has_active_client"`
	Geofences            []geofenceFile                `yaml:"geofences"`
	Entitlements         map[string][]entity.Category  `yaml:"entitlements"`
	Members              map[string][]string           `yaml:"members,omitempty"`
}

type settingsFile struct {
	Guilds []guildFile `yaml:"guilds"`
}

// Store serves guild settings and static role memberships loaded from
// one settings file. It implements both GuildSettingsService and
// MemberService.
type Store struct {
	guilds  map[uint64]*service.GuildSettings
	members map[uint64]map[uint64]*service.Member
}

// Load reads and validates the guild settings file at path.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read guild settings %s", path)
	}

	var file settingsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Wrapf(err, "decode guild settings %s", path)
	}

	store := &Store{
		guilds:  make(map[uint64]*service.GuildSettings, len(file.Guilds)),
		members: make(map[uint64]map[uint64]*service.Member, len(file.Guilds)),
	}
	for _, g := range file.Guilds {
		if g.ID == 0 {
			return nil, errors.Errorf("guild settings %s: guild with missing id", path)
		}

		settings, err := buildSettings(g)
		if err != nil {
			return nil, errors.Wrapf(err, "guild %d", g.ID)
		}
		store.guilds[g.ID] = settings

		members, err := buildMembers(g)
		if err != nil {
			return nil, errors.Wrapf(err, "guild %d", g.ID)
		}
		store.members[g.ID] = members
	}

	return store, nil
}

func buildSettings(g guildFile) (*service.GuildSettings, error) {
	fences := make([]entity.Geofence, 0, len(g.Geofences))
	for _, f := range g.Geofences {
		if f.Name == "" {
			return nil, errors.New("geofence with missing name")
		}
		if len(f.Ring) < 3 {
			return nil, errors.Errorf("geofence %s: ring needs at least 3 vertices", f.Name)
		}

		ring := make(orb.Ring, 0, len(f.Ring)+1)
		for _, pair := range f.Ring {
			ring = append(ring, orb.Point{pair[1], pair[0]})
		}
		if ring[0] != ring[len(ring)-1] {
			ring = append(ring, ring[0])
		}

		fences = append(fences, entity.Geofence{
			Name:     f.Name,
			Boundary: orb.Polygon{ring},
		})
	}

	entitlements := make(map[uint64][]entity.Category, len(g.Entitlements))
	for roleKey, categories := range g.Entitlements {
		roleID, err := strconv.ParseUint(roleKey, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "entitlement role %q", roleKey)
		}
		for _, cat := range categories {
			if !validCategory(cat) {
				return nil, errors.Errorf("entitlement role %s: unknown category %q", roleKey, cat)
			}
		}
		entitlements[roleID] = categories
	}

	return &service.GuildSettings{
		Geofences:            fences,
		Entitlements:         entitlements,
		SubscriptionsEnabled: g.SubscriptionsEnabled,
		HasActiveClient:      g.HasActiveClient,
	}, nil
}

func validCategory(cat entity.Category) bool {
	for _, known := range entity.Categories() {
		if cat == known {
			return true
		}
	}

	return false
}

func buildMembers(g guildFile) (map[uint64]*service.Member, error) {
	members := make(map[uint64]*service.Member, len(g.Members))
	for userKey, roleKeys := range g.Members {
		userID, err := strconv.ParseUint(userKey, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "member id %q", userKey)
		}

		roles := make([]uint64, 0, len(roleKeys))
		for _, roleKey := range roleKeys {
			roleID, err := strconv.ParseUint(roleKey, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "member %s role %q", userKey, roleKey)
			}
			roles = append(roles, roleID)
		}

		members[userID] = &service.Member{
			UserID:   userID,
			Username: userKey,
			Roles:    roles,
		}
	}

	return members, nil
}

// AsGuildSettingsService binds the store to the settings interface for
// dependency injection.
func AsGuildSettingsService(s *Store) service.GuildSettingsService {
	return s
}

// AsMemberService binds the store to the member interface for dependency
// injection.
func AsMemberService(s *Store) service.MemberService {
	return s
}

// Settings returns the guild's settings snapshot, or false for guilds
// unknown to this deployment.
func (s *Store) Settings(guildID uint64) (*service.GuildSettings, bool) {
	settings, ok := s.guilds[guildID]

	return settings, ok
}

// ErrMemberNotFound is returned when a user has no membership record in
// the guild. Dispatchers treat it as a per-subscriber skip.
var ErrMemberNotFound = errors.New("member not found in guild")

// ResolveMember looks up the static membership record for the user.
func (s *Store) ResolveMember(_ context.Context, guildID, userID uint64) (*service.Member, error) {
	guild, ok := s.members[guildID]
	if !ok {
		return nil, errors.Wrapf(ErrMemberNotFound, "guild %d", guildID)
	}
	member, ok := guild[userID]
	if !ok {
		return nil, errors.Wrapf(ErrMemberNotFound, "user %d", userID)
	}

	return member, nil
}
