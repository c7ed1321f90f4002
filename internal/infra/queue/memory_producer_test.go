package queue

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/service"
	"geowatch/internal/infra/stats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testItem(category entity.Category) *entity.NotificationItem {
	return &entity.NotificationItem{
		ID:       uuid.New(),
		GuildID:  1,
		UserID:   2,
		Category: category,
		Region:   "Park",
		Message:  entity.RenderedMessage{Title: "t", Body: "b"},
	}
}

func TestMemoryProducer_EnqueueAndConsume(t *testing.T) {
	p := NewMemoryProducer(4, testLogger())

	item := testItem(entity.CategoryCreature)
	require.NoError(t, p.Enqueue(context.Background(), item))

	got := <-p.Items()
	assert.Equal(t, item.ID, got.ID)
}

func TestMemoryProducer_ClosedQueue(t *testing.T) {
	p := NewMemoryProducer(4, testLogger())
	require.NoError(t, p.Close())
	require.NoError(t, p.Close(), "double close is a no-op")

	err := p.Enqueue(context.Background(), testItem(entity.CategoryRaid))
	assert.ErrorIs(t, err, ErrQueueClosed)

	_, open := <-p.Items()
	assert.False(t, open, "channel is closed for consumers")
}

func TestMemoryProducer_FullBufferHonorsContext(t *testing.T) {
	p := NewMemoryProducer(1, testLogger())
	require.NoError(t, p.Enqueue(context.Background(), testItem(entity.CategoryLure)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Enqueue(ctx, testItem(entity.CategoryLure))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCountingProducer_IncrementsOnSuccessOnly(t *testing.T) {
	counters := stats.NewCounters()
	mem := NewMemoryProducer(4, testLogger())
	var p service.QueueProducer = &countingProducer{next: mem, counters: counters}

	require.NoError(t, p.Enqueue(context.Background(), testItem(entity.CategoryQuest)))
	require.NoError(t, p.Enqueue(context.Background(), testItem(entity.CategoryQuest)))
	assert.Equal(t, int64(2), counters.Snapshot()[entity.CategoryQuest])

	require.NoError(t, mem.Close())
	err := p.Enqueue(context.Background(), testItem(entity.CategoryQuest))
	require.Error(t, err)
	assert.Equal(t, int64(2), counters.Snapshot()[entity.CategoryQuest], "failed enqueue is not counted")
}
