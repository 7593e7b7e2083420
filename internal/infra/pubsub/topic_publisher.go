package pubsub

import (
	"context"
	"log/slog"

	"dropzone/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// TopicOptions selects the Google Pub/Sub topic events are published to.
type TopicOptions struct {
	ProjectID string
	TopicID   string
	// Endpoint points the client at an emulator such as "localhost:8085".
	Endpoint string
}

func (o TopicOptions) topicName() string {
	return "projects/" + o.ProjectID + "/topics/" + o.TopicID
}

func (o TopicOptions) clientOptions() []option.ClientOption {
	if o.Endpoint == "" {
		return nil
	}

	return []option.ClientOption{option.WithEndpoint(o.Endpoint), option.WithoutAuthentication()}
}

// topicPublisher publishes events to a Google Pub/Sub topic with ordering
// enabled.
type topicPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewTopicPublisher connects to Pub/Sub and checks that the topic exists.
func NewTopicPublisher(ctx context.Context, opts TopicOptions, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, opts.ProjectID, opts.clientOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: opts.topicName()}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not available", opts.topicName())
	}

	publisher := client.Publisher(opts.TopicID)
	publisher.EnableMessageOrdering = true

	return &topicPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger.With(slog.String("publisher", "topic"), slog.String("topic", opts.topicName())),
	}, nil
}

func (p *topicPublisher) PublishAssignmentEvent(ctx context.Context, event *service.AssignmentEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key until resumed.
		p.publisher.ResumePublish(msg.orderingKey)

		return errors.Wrapf(err, "failed to publish %s event", event.Type)
	}

	p.logger.DebugContext(ctx, "Assignment event published",
		slog.String("type", event.Type),
		slog.String("listing_id", event.ListingID),
		slog.String("message_id", serverID),
	)

	return nil
}

func (p *topicPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
