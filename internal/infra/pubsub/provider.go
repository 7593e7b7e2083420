// Package pubsub publishes assignment events to downstream consumers.
package pubsub

import (
	"context"
	"log/slog"

	"dropzone/config"
	"dropzone/internal/domain/constants"
	"dropzone/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by the pubsub config. Without a
// provider events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Assignment events disabled")

		return discardPublisher{}, nil
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	publisher, err := open(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Assignment events enabled", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

func validate(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub: localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub: projectId and topicId are required for the google provider")
		}
	default:
		return errors.Errorf("pubsub: unknown provider %q", cfg.Provider)
	}

	return nil
}

func open(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderLocal {
		return NewPushPublisher(cfg.LocalEndpoint, logger), nil
	}

	return NewTopicPublisher(ctx, TopicOptions{
		ProjectID: cfg.ProjectID,
		TopicID:   cfg.TopicID,
		Endpoint:  cfg.Endpoint,
	}, logger)
}

// discardPublisher drops every event.
type discardPublisher struct{}

func (discardPublisher) PublishAssignmentEvent(context.Context, *service.AssignmentEvent) error {
	return nil
}

func (discardPublisher) Close() error { return nil }

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
