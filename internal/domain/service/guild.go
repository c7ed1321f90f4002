package service

import "geowatch/internal/domain/entity"

// GuildSettings is the per-guild configuration snapshot consulted once
// per (guild, event) during a dispatch pass.
type GuildSettings struct {
	// Geofences is the guild's ordered polygon list; resolution is
	// first-match-wins.
	Geofences []entity.Geofence

	// Entitlements maps a role ID to the notification categories it
	// unlocks. Its key set doubles as the guild's supporter role set
	// for the baseline access check.
	Entitlements map[uint64][]entity.Category

	// SubscriptionsEnabled gates the whole guild administratively.
	SubscriptionsEnabled bool

	// HasActiveClient reports whether a delivery client currently
	// serves this guild; without one the guild is skipped.
	HasActiveClient bool
}

// GuildSettingsService exposes guild configuration to the dispatchers.
// The boolean is false for guilds unknown to this deployment.
type GuildSettingsService interface {
	Settings(guildID uint64) (*GuildSettings, bool)
}
