package repository

import (
	"context"

	"geowatch/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSubscriberNotFound is returned when a subscriber record does not exist.
var ErrSubscriberNotFound = errors.New("subscriber not found")

// SubscriptionRepository provides indexed candidate-shortlist lookups
// for the category dispatchers. Each Find method returns the subscribers
// that *may* match the event identifier; the dispatcher re-evaluates the
// full predicates, so a shortlist is allowed to over-approximate but
// must never omit a potential match. A returned error aborts the whole
// dispatch pass for that event (fail-closed).
type SubscriptionRepository interface {
	FindByCreature(ctx context.Context, speciesID entity.SpeciesID) ([]*entity.Subscriber, error)
	FindByRankedBattle(ctx context.Context, speciesID entity.SpeciesID) ([]*entity.Subscriber, error)
	FindByRaidBoss(ctx context.Context, speciesID entity.SpeciesID) ([]*entity.Subscriber, error)
	FindByQuest(ctx context.Context, rewardKeyword string) ([]*entity.Subscriber, error)
	FindByInvasion(ctx context.Context, rewards []entity.SpeciesID) ([]*entity.Subscriber, error)
	FindByLure(ctx context.Context, lureType entity.LureType) ([]*entity.Subscriber, error)
	FindByGym(ctx context.Context, gymName string) ([]*entity.Subscriber, error)

	// UpsertSubscriber and DeleteSubscriber back the management surface;
	// the dispatch core never calls them.
	UpsertSubscriber(ctx context.Context, sub *entity.Subscriber) error
	DeleteSubscriber(ctx context.Context, guildID, userID uint64) error
	FindSubscriber(ctx context.Context, guildID, userID uint64) (*entity.Subscriber, error)
}
