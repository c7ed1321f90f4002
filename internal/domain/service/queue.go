package service

import (
	"context"

	"geowatch/internal/domain/entity"
)

// QueueProducer hands fully-formed notification items to the outbound
// delivery queue. Enqueue must not block the dispatch pass beyond queue
// admission and must never fail for a well-formed item on in-process
// backends. Successful enqueue increments the item's category counter.
type QueueProducer interface {
	Enqueue(ctx context.Context, item *entity.NotificationItem) error
	Close() error
}
