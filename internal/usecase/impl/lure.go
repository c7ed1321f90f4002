package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/filter"
)

// ProcessLure dispatches one lure activation.
func (s *dispatchService) ProcessLure(ctx context.Context, ev *entity.LureEvent) error {
	subs, err := s.subscriptionRepo.FindByLure(ctx, ev.LureType)
	if err != nil {
		s.logger.Warn("lure shortlist fetch failed",
			slog.String("lure_type", string(ev.LureType)),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "fetch lure candidates")
	}

	return s.dispatch(ctx, ev, subs, func(ctx context.Context, pass *eventPass, sub *entity.Subscriber, region *entity.Geofence) error {
		for i := range sub.Lures {
			entry := &sub.Lures[i]
			if !filter.MatchesLure(ev, entry) {
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
