package queue

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/service"
)

// ErrQueueClosed is returned when enqueueing after Close.
var ErrQueueClosed = errors.New("notification queue is closed")

// memoryProducer is an in-process buffered queue used by the webhook
// feed surface and by tests.
type memoryProducer struct {
	items  chan *entity.NotificationItem
	logger *slog.Logger

	// mu is held shared by senders and exclusively by Close so the
	// channel is never closed mid-send.
	mu     sync.RWMutex
	closed bool
}

// NewMemoryProducer creates an in-memory producer with the given buffer
// size.
func NewMemoryProducer(bufferSize int, logger *slog.Logger) *memoryProducer {
	if bufferSize <= 0 {
		bufferSize = 1024
	}

	return &memoryProducer{
		items:  make(chan *entity.NotificationItem, bufferSize),
		logger: logger,
	}
}

// Enqueue admits the item to the buffer, blocking only until buffer
// space or context cancellation.
func (p *memoryProducer) Enqueue(ctx context.Context, item *entity.NotificationItem) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return errors.WithStack(ErrQueueClosed)
	}

	select {
	case p.items <- item:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Items exposes the buffered channel to the delivery-side consumer. The
// channel is closed by Close.
func (p *memoryProducer) Items() <-chan *entity.NotificationItem {
	return p.items
}

func (p *memoryProducer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.items)

	return nil
}

var _ service.QueueProducer = (*memoryProducer)(nil)
