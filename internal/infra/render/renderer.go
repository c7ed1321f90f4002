// Package render builds the displayable notification content for
// matched events.
package render

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/service"
)

type renderer struct {
	catalog service.Catalog
}

// NewRenderer is the constructor for the default text renderer.
func NewRenderer(catalog service.Catalog) service.Renderer {
	return &renderer{catalog: catalog}
}

// Render produces one message part per event. Titles carry the subject,
// bodies the detail line plus the resolved region when known.
func (r *renderer) Render(_ context.Context, ev entity.Event, _ *entity.Subscriber, region string) ([]entity.RenderedMessage, error) {
	var msg entity.RenderedMessage

	switch e := ev.(type) {
	case *entity.CreatureSighting:
		name := r.catalog.SpeciesName(e.SpeciesID, e.Form)
		msg = entity.RenderedMessage{
			Title: fmt.Sprintf("%s spotted", name),
			Body:  fmt.Sprintf("%s L%d %.1f%% (%s)", name, e.Level, e.IVPercent, e.StatCombo()),
		}

	case *entity.RankedBattleCandidate:
		name := r.catalog.SpeciesName(e.SpeciesID, e.Form)
		best := bestRanking(e.Rankings)
		msg = entity.RenderedMessage{
			Title: fmt.Sprintf("%s ranked contender", name),
			Body:  fmt.Sprintf("%s rank %d (%s league, CP %d)", name, best.Rank, best.League, best.CP),
		}

	case *entity.RaidEvent:
		name := r.catalog.SpeciesName(e.BossID, e.Form)
		msg = entity.RenderedMessage{
			Title: fmt.Sprintf("%s raid", name),
			Body:  fmt.Sprintf("%s raid at %s", name, e.GymName),
		}

	case *entity.QuestEvent:
		msg = entity.RenderedMessage{
			Title: fmt.Sprintf("Quest at %s", e.PokestopName),
			Body:  fmt.Sprintf("Reward: %s", e.RewardKeyword),
		}

	case *entity.InvasionEvent:
		msg = entity.RenderedMessage{
			Title: fmt.Sprintf("Invasion at %s", e.PokestopName),
			Body:  fmt.Sprintf("Grunt type %d took over %s", e.GruntType, e.PokestopName),
		}

	case *entity.LureEvent:
		msg = entity.RenderedMessage{
			Title: fmt.Sprintf("Lure at %s", e.PokestopName),
			Body:  fmt.Sprintf("%s lure active at %s", e.LureType, e.PokestopName),
		}

	case *entity.GymStateEvent:
		name := r.catalog.SpeciesName(e.OccupantID, e.Form)
		msg = entity.RenderedMessage{
			Title: fmt.Sprintf("Gym update: %s", e.GymName),
			Body:  fmt.Sprintf("%s now holds %s", name, e.GymName),
		}

	default:
		return nil, errors.Errorf("unrenderable event type %T", ev)
	}

	coord := ev.Coord()
	msg.Body = fmt.Sprintf("%s\n%.5f, %.5f", msg.Body, coord.Latitude, coord.Longitude)
	if region != "" {
		msg.Body = fmt.Sprintf("%s\nArea: %s", msg.Body, region)
	}

	return []entity.RenderedMessage{msg}, nil
}

// bestRanking picks the lowest (best) rank for the headline.
func bestRanking(rankings []entity.LeagueRanking) entity.LeagueRanking {
	if len(rankings) == 0 {
		return entity.LeagueRanking{}
	}

	best := rankings[0]
	for _, r := range rankings[1:] {
		if r.Rank > 0 && (best.Rank <= 0 || r.Rank < best.Rank) {
			best = r
		}
	}

	return best
}
