package entity

import "github.com/google/uuid"

// RenderedMessage is one displayable part of a notification, produced
// by the content renderer. A single match may render to multiple parts.
type RenderedMessage struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url,omitempty"`
}

// NotificationItem is the unit handed to the outbound delivery queue.
// Ownership transfers to the queue on enqueue; the matching engine
// never mutates an item afterwards.
type NotificationItem struct {
	ID       uuid.UUID       `json:"id"`
	GuildID  uint64          `json:"guild_id"`
	UserID   uint64          `json:"user_id"`
	Category Category        `json:"category"`
	Region   string          `json:"region"`
	Message  RenderedMessage `json:"message"`
}
