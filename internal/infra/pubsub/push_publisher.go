package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"dropzone/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	pushTimeout      = 10 * time.Second
	pushSubscription = "projects/local/subscriptions/dropzone-assignments"
)

// pushPublisher delivers events straight to an HTTP endpoint in the push
// subscription format. It is meant for local development.
type pushPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewPushPublisher returns a publisher posting each event to endpoint.
func NewPushPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &pushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: pushTimeout},
		logger:   logger.With(slog.String("publisher", "push")),
	}
}

func (p *pushPublisher) PublishAssignmentEvent(ctx context.Context, event *service.AssignmentEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(newPushEnvelope(msg, pushSubscription, uuid.NewString(), time.Now()))
	if err != nil {
		return errors.Wrap(err, "failed to encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build push request")
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if event.RequestID != "" {
		req.Header.Set(echo.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push %s event", event.Type)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint rejected %s event with status %d", event.Type, resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Assignment event pushed",
		slog.String("type", event.Type),
		slog.String("listing_id", event.ListingID),
	)

	return nil
}

func (p *pushPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
