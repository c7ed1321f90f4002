package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/filter"
)

// ProcessCreature dispatches one wild creature sighting.
func (s *dispatchService) ProcessCreature(ctx context.Context, ev *entity.CreatureSighting) error {
	if !s.catalog.HasSpecies(ev.SpeciesID) {
		return errors.Errorf("creature event references unknown species %d", ev.SpeciesID)
	}

	subs, err := s.subscriptionRepo.FindByCreature(ctx, ev.SpeciesID)
	if err != nil {
		s.logger.Warn("creature shortlist fetch failed",
			slog.Uint64("species_id", uint64(ev.SpeciesID)),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "fetch creature candidates")
	}

	return s.dispatch(ctx, ev, subs, func(ctx context.Context, pass *eventPass, sub *entity.Subscriber, region *entity.Geofence) error {
		for i := range sub.Creatures {
			entry := &sub.Creatures[i]
			if !filter.MatchesCreature(ev, entry) {
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
