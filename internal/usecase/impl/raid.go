package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/filter"
)

// ProcessRaid dispatches one raid hatch.
func (s *dispatchService) ProcessRaid(ctx context.Context, ev *entity.RaidEvent) error {
	if !s.catalog.HasSpecies(ev.BossID) {
		return errors.Errorf("raid event references unknown boss species %d", ev.BossID)
	}

	subs, err := s.subscriptionRepo.FindByRaidBoss(ctx, ev.BossID)
	if err != nil {
		s.logger.Warn("raid shortlist fetch failed",
			slog.Uint64("boss_id", uint64(ev.BossID)),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "fetch raid candidates")
	}

	return s.dispatch(ctx, ev, subs, func(ctx context.Context, pass *eventPass, sub *entity.Subscriber, region *entity.Geofence) error {
		for i := range sub.Raids {
			entry := &sub.Raids[i]
			if !filter.MatchesRaid(ev, entry) {
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
