package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/service"
)

const webhookTimeout = 30 * time.Second

// webhookProducer delivers notification items by POSTing them to an
// HTTP endpoint, one request per item. Used for development and for
// deployments whose delivery client speaks plain webhooks.
type webhookProducer struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookProducer creates a webhook-backed producer.
func NewWebhookProducer(endpoint string, logger *slog.Logger) service.QueueProducer {
	return &webhookProducer{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: webhookTimeout,
		},
		logger: logger,
	}
}

// Enqueue POSTs the item to the configured endpoint.
func (p *webhookProducer) Enqueue(ctx context.Context, item *entity.NotificationItem) error {
	body, err := json.Marshal(item)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("webhook returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[WebhookQueue] Notification delivered",
		slog.String("notification_id", item.ID.String()),
		slog.String("endpoint", p.endpoint),
	)

	return nil
}

// Close releases resources (no-op for the HTTP client).
func (p *webhookProducer) Close() error {
	return nil
}
