package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/filter"
)

// ProcessInvasion dispatches one grunt takeover. The encounter-reward
// species set is derived from the grunt type before any subscriber
// work; an unknown grunt type aborts the pass.
func (s *dispatchService) ProcessInvasion(ctx context.Context, ev *entity.InvasionEvent) error {
	rewards, ok := s.catalog.EncounterRewards(ev.GruntType)
	if !ok {
		return errors.Errorf("invasion event references unknown grunt type %d", ev.GruntType)
	}

	subs, err := s.subscriptionRepo.FindByInvasion(ctx, rewards)
	if err != nil {
		s.logger.Warn("invasion shortlist fetch failed",
			slog.Uint64("grunt_type", uint64(ev.GruntType)),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "fetch invasion candidates")
	}

	return s.dispatch(ctx, ev, subs, func(ctx context.Context, pass *eventPass, sub *entity.Subscriber, region *entity.Geofence) error {
		for i := range sub.Invasions {
			entry := &sub.Invasions[i]
			if !filter.MatchesInvasion(rewards, entry) {
				continue
			}
			if !pass.allows(sub, entry.Location, entry.Areas, region) {
				continue
			}
			if err := pass.notify(ctx, sub, region); err != nil {
				return err
			}
		}

		return nil
	})
}
