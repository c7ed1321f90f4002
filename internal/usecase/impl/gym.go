package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/filter"
)

// ProcessGym dispatches one gym occupant change. The location gate
// applies here exactly as in every other category.
func (s *dispatchService) ProcessGym(ctx context.Context, ev *entity.GymStateEvent) error {
	if !s.catalog.HasSpecies(ev.OccupantID) {
		return errors.Errorf("gym event references unknown occupant species %d", ev.OccupantID)
	}

	subs, err := s.subscriptionRepo.FindByGym(ctx, ev.GymName)
	if err != nil {
		s.logger.Warn("gym shortlist fetch failed",
			slog.String("gym", ev.GymName),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "fetch gym candidates")
	}

	return s.dispatch(ctx, ev, subs, func(ctx context.Context, pass *eventPass, sub *entity.Subscriber, region *entity.Geofence) error {
		for i := range sub.Gyms {
			entry := &sub.Gyms[i]
			if !filter.MatchesGym(ev, entry) {
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
