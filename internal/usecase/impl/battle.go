package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/filter"
)

// ProcessRankedBattle dispatches one ranked-battle candidate spawn.
func (s *dispatchService) ProcessRankedBattle(ctx context.Context, ev *entity.RankedBattleCandidate) error {
	if !s.catalog.HasSpecies(ev.SpeciesID) {
		return errors.Errorf("ranked-battle event references unknown species %d", ev.SpeciesID)
	}

	subs, err := s.subscriptionRepo.FindByRankedBattle(ctx, ev.SpeciesID)
	if err != nil {
		s.logger.Warn("ranked-battle shortlist fetch failed",
			slog.Uint64("species_id", uint64(ev.SpeciesID)),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "fetch ranked-battle candidates")
	}

	return s.dispatch(ctx, ev, subs, func(ctx context.Context, pass *eventPass, sub *entity.Subscriber, region *entity.Geofence) error {
		for i := range sub.Battles {
			entry := &sub.Battles[i]
			if !filter.MatchesRankedBattle(ev, entry) {
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
