package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/filter"
)

// ProcessQuest dispatches one special-task appearance.
func (s *dispatchService) ProcessQuest(ctx context.Context, ev *entity.QuestEvent) error {
	subs, err := s.subscriptionRepo.FindByQuest(ctx, ev.RewardKeyword)
	if err != nil {
		s.logger.Warn("quest shortlist fetch failed",
			slog.String("pokestop_id", ev.PokestopID),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "fetch quest candidates")
	}

	return s.dispatch(ctx, ev, subs, func(ctx context.Context, pass *eventPass, sub *entity.Subscriber, region *entity.Geofence) error {
		for i := range sub.Quests {
			entry := &sub.Quests[i]
			if !filter.MatchesQuest(ev, entry) {
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
