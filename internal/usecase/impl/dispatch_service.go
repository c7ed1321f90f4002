package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"geowatch/config"
	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/repository"
	"geowatch/internal/domain/service"
	"geowatch/internal/infra/geo"
	"geowatch/internal/usecase"
)

const (
	defaultPacingDelay = 5 * time.Millisecond
	defaultPacingBurst = 1
)

type dispatchService struct {
	subscriptionRepo repository.SubscriptionRepository
	guilds           service.GuildSettingsService
	members          service.MemberService
	renderer         service.Renderer
	producer         service.QueueProducer
	catalog          service.Catalog
	logger           *slog.Logger
	pacer            *rate.Limiter
}

// NewDispatchService creates the dispatch service instance.
func NewDispatchService(
	subscriptionRepo repository.SubscriptionRepository,
	guilds service.GuildSettingsService,
	members service.MemberService,
	renderer service.Renderer,
	producer service.QueueProducer,
	catalog service.Catalog,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.DispatchUsecase {
	delay := defaultPacingDelay
	burst := defaultPacingBurst
	if cfg != nil && cfg.Dispatch != nil {
		if cfg.Dispatch.PacingDelay > 0 {
			delay = cfg.Dispatch.PacingDelay
		}
		if cfg.Dispatch.PacingBurst > 0 {
			burst = cfg.Dispatch.PacingBurst
		}
	}

	return &dispatchService{
		subscriptionRepo: subscriptionRepo,
		guilds:           guilds,
		members:          members,
		renderer:         renderer,
		producer:         producer,
		catalog:          catalog,
		logger:           logger,
		pacer:            rate.NewLimiter(rate.Every(delay), burst),
	}
}

// eventPass carries the per-invocation state of one dispatch pass. The
// geofence memo is local to the pass, so concurrent passes never share
// mutable state.
type eventPass struct {
	svc      *dispatchService
	event    entity.Event
	category entity.Category
	point    orb.Point

	regionMemo map[uint64]*entity.Geofence
	memoized   map[uint64]bool
}

// matchFunc evaluates one subscriber's filter entries against the pass
// event. region is nil when the point falls outside every guild
// geofence.
type matchFunc func(ctx context.Context, pass *eventPass, sub *entity.Subscriber, region *entity.Geofence) error

// dispatch walks the shortlist once, isolating each subscriber.
func (s *dispatchService) dispatch(ctx context.Context, ev entity.Event, subs []*entity.Subscriber, match matchFunc) error {
	if len(subs) == 0 {
		s.logger.Debug("dispatch pass has no candidates",
			slog.String("category", ev.Category().String()),
		)

		return nil
	}

	pass := &eventPass{
		svc:        s,
		event:      ev,
		category:   ev.Category(),
		point:      ev.Coord().Point(),
		regionMemo: make(map[uint64]*entity.Geofence),
		memoized:   make(map[uint64]bool),
	}

	for _, sub := range subs {
		s.safely(ctx, pass, sub, match)
	}

	return nil
}

// safely runs one subscriber evaluation with panic and error isolation.
// A failure skips only this subscriber.
func (s *dispatchService) safely(ctx context.Context, pass *eventPass, sub *entity.Subscriber, match matchFunc) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("dispatch subscriber evaluation panicked",
				slog.String("category", pass.category.String()),
				slog.Uint64("guild_id", sub.GuildID),
				slog.Uint64("user_id", sub.UserID),
				slog.Any("panic", r),
			)
		}
	}()

	region, ok, err := pass.subscriberRegion(ctx, sub)
	if err != nil {
		s.logger.Warn("subscriber skipped",
			slog.String("category", pass.category.String()),
			slog.Uint64("guild_id", sub.GuildID),
			slog.Uint64("user_id", sub.UserID),
			slog.String("error", err.Error()),
		)

		return
	}
	if !ok {
		return
	}

	if err := match(ctx, pass, sub, region); err != nil {
		s.logger.Warn("subscriber evaluation failed",
			slog.String("category", pass.category.String()),
			slog.Uint64("guild_id", sub.GuildID),
			slog.Uint64("user_id", sub.UserID),
			slog.String("error", err.Error()),
		)
	}
}

// subscriberRegion runs the per-subscriber prologue: guild gates, member
// resolution and access checks, then resolves the event's region for the
// subscriber's guild. ok is false when the subscriber is skipped without
// error.
func (p *eventPass) subscriberRegion(ctx context.Context, sub *entity.Subscriber) (*entity.Geofence, bool, error) {
	settings, found := p.svc.guilds.Settings(sub.GuildID)
	if !found {
		p.svc.logger.Debug("guild not registered",
			slog.Uint64("guild_id", sub.GuildID),
		)

		return nil, false, nil
	}
	if !settings.SubscriptionsEnabled || !settings.HasActiveClient {
		p.svc.logger.Debug("guild subscriptions unavailable",
			slog.Uint64("guild_id", sub.GuildID),
			slog.Bool("enabled", settings.SubscriptionsEnabled),
			slog.Bool("active_client", settings.HasActiveClient),
		)

		return nil, false, nil
	}

	member, err := p.svc.members.ResolveMember(ctx, sub.GuildID, sub.UserID)
	if err != nil {
		return nil, false, errors.Wrap(err, "resolve member")
	}

	if !hasBaselineAccess(member.Roles, settings.Entitlements) {
		p.svc.logger.Debug("subscriber lacks supporter role",
			slog.Uint64("guild_id", sub.GuildID),
			slog.Uint64("user_id", sub.UserID),
		)

		return nil, false, nil
	}
	if !hasCategoryAccess(member.Roles, settings.Entitlements, p.category) {
		p.svc.logger.Debug("subscriber roles do not unlock category",
			slog.Uint64("guild_id", sub.GuildID),
			slog.Uint64("user_id", sub.UserID),
			slog.String("category", p.category.String()),
		)

		return nil, false, nil
	}

	return p.region(sub.GuildID, settings), true, nil
}

// region resolves and memoizes the event's geofence per guild. A nil
// result is memoized too; resolution runs at most once per guild per
// pass.
func (p *eventPass) region(guildID uint64, settings *service.GuildSettings) *entity.Geofence {
	if p.memoized[guildID] {
		return p.regionMemo[guildID]
	}

	region := geo.ResolveGeofence(settings.Geofences, p.point)
	p.regionMemo[guildID] = region
	p.memoized[guildID] = true

	return region
}

// notify renders the matched event for the subscriber and enqueues one
// item per rendered part, then applies the pacing delay.
func (p *eventPass) notify(ctx context.Context, sub *entity.Subscriber, region *entity.Geofence) error {
	regionName := ""
	if region != nil {
		regionName = region.Name
	}

	messages, err := p.svc.renderer.Render(ctx, p.event, sub, regionName)
	if err != nil {
		return errors.Wrap(err, "render notification")
	}

	for _, msg := range messages {
		item := &entity.NotificationItem{
			ID:       uuid.New(),
			GuildID:  sub.GuildID,
			UserID:   sub.UserID,
			Category: p.category,
			Region:   regionName,
			Message:  msg,
		}
		if err := p.svc.producer.Enqueue(ctx, item); err != nil {
			return errors.Wrap(err, "enqueue notification")
		}
	}

	if err := p.svc.pacer.Wait(ctx); err != nil {
		return errors.Wrap(err, "pacing wait")
	}

	return nil
}
