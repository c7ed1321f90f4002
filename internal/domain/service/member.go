package service

import "context"

// Member is the chat-platform view of a subscriber inside one guild.
type Member struct {
	UserID   uint64
	Username string
	Roles    []uint64
}

// MemberService resolves guild membership through the chat platform.
// ResolveMember may fail with a recoverable error (user left the guild,
// transient platform error); the dispatcher treats that as a
// per-subscriber skip, never as a pass-wide failure.
type MemberService interface {
	ResolveMember(ctx context.Context, guildID, userID uint64) (*Member, error)
}
