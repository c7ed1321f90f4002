// Package usecase defines the application-level interfaces implemented
// under impl.
package usecase

import (
	"context"

	"geowatch/internal/domain/entity"
)

// DispatchUsecase runs one matching pass per incoming event: shortlist
// fetch, per-subscriber access checks, predicate evaluation, location
// gating, rendering and enqueueing. Passes for different events may run
// concurrently; one pass processes its shortlist sequentially.
//
// A returned error means the pass was aborted before subscriber work
// (unknown identifiers, shortlist fetch failure). Per-subscriber
// failures are isolated and logged, never returned.
type DispatchUsecase interface {
	ProcessCreature(ctx context.Context, ev *entity.CreatureSighting) error
	ProcessRankedBattle(ctx context.Context, ev *entity.RankedBattleCandidate) error
	ProcessRaid(ctx context.Context, ev *entity.RaidEvent) error
	ProcessQuest(ctx context.Context, ev *entity.QuestEvent) error
	ProcessInvasion(ctx context.Context, ev *entity.InvasionEvent) error
	ProcessLure(ctx context.Context, ev *entity.LureEvent) error
	ProcessGym(ctx context.Context, ev *entity.GymStateEvent) error
}
