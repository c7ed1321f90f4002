// Package queue provides the outbound notification queue producers and
// selects a backend from configuration.
package queue

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"geowatch/config"
	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/service"
)

// Supported queue providers.
const (
	ProviderMemory  = "memory"
	ProviderGoogle  = "google"
	ProviderWebhook = "webhook"
)

// noopProducer drops items when no queue is configured.
type noopProducer struct {
	logger *slog.Logger
}

func (p *noopProducer) Enqueue(_ context.Context, item *entity.NotificationItem) error {
	p.logger.Debug("[NoopQueue] Queue disabled, dropping notification",
		slog.String("notification_id", item.ID.String()),
	)

	return nil
}

func (p *noopProducer) Close() error {
	return nil
}

// countingProducer wraps a backend and increments the per-category
// counter on every successful enqueue. It is the single place counters
// are incremented.
type countingProducer struct {
	next     service.QueueProducer
	counters service.Counters
}

func (p *countingProducer) Enqueue(ctx context.Context, item *entity.NotificationItem) error {
	if err := p.next.Enqueue(ctx, item); err != nil {
		return err
	}
	p.counters.Add(item.Category, 1)

	return nil
}

func (p *countingProducer) Close() error {
	return p.next.Close()
}

// ProducerParams holds dependencies for QueueProducer, injected by Fx.
type ProducerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Counters service.Counters
}

// NewQueueProducer creates a QueueProducer based on configuration.
func NewQueueProducer(params ProducerParams) (service.QueueProducer, error) {
	cfg := params.Config.Queue
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Queue not configured, using no-op producer")

		return &countingProducer{
			next:     &noopProducer{logger: logger},
			counters: params.Counters,
		}, nil
	}

	var producer service.QueueProducer
	var err error

	switch cfg.Provider {
	case ProviderMemory:
		logger.Info("Using in-memory notification queue",
			slog.Int("buffer_size", cfg.BufferSize),
		)

		producer = NewMemoryProducer(cfg.BufferSize, logger)

	case ProviderWebhook:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for webhook provider")
		}
		logger.Info("Using webhook notification queue",
			slog.String("endpoint", cfg.Endpoint),
		)

		producer = NewWebhookProducer(cfg.Endpoint, logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub notification queue",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		producer, err = NewGoogleProducer(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown queue provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing QueueProducer")

			return producer.Close()
		},
	})

	return &countingProducer{next: producer, counters: params.Counters}, nil
}

// Module provides the queue FX module.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewQueueProducer),
)
