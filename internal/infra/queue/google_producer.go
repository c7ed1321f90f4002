package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/service"
)

// googleProducer implements QueueProducer on Google Cloud Pub/Sub.
type googleProducer struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGoogleProducer creates a Pub/Sub backed producer. The topic must
// already exist.
func NewGoogleProducer(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.QueueProducer, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub producer initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googleProducer{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Enqueue publishes the item and waits for server acknowledgement.
func (p *googleProducer) Enqueue(ctx context.Context, item *entity.NotificationItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return errors.WithStack(err)
	}

	// Attributes allow subscribers to filter without decoding the body.
	msg := &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"notification_id": item.ID.String(),
			"guild_id":        strconv.FormatUint(item.GuildID, 10),
			"user_id":         strconv.FormatUint(item.UserID, 10),
			"category":        item.Category.String(),
		},
	}

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Notification published",
		slog.String("notification_id", item.ID.String()),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources.
func (p *googleProducer) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
