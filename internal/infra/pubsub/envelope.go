package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"dropzone/internal/domain/service"

	"github.com/pkg/errors"
)

// message is an assignment event ready for any transport. Events for the same
// listing share an ordering key.
type message struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func encodeEvent(event *service.AssignmentEvent) (*message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode assignment event")
	}

	attrs := map[string]string{
		"type":          event.Type,
		"listing_id":    event.ListingID,
		"supplier_id":   event.SupplierID,
		"drop_point_id": event.DropPointID,
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}
	if event.Fallback {
		attrs["fallback"] = "true"
	}

	return &message{data: data, attributes: attrs, orderingKey: event.ListingID}, nil
}

// pushEnvelope is the body Pub/Sub push subscriptions deliver to HTTP
// endpoints.
type pushEnvelope struct {
	Message      pushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type pushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	OrderingKey string            `json:"orderingKey,omitempty"`
	PublishTime string            `json:"publishTime"`
}

func newPushEnvelope(msg *message, subscription, messageID string, at time.Time) pushEnvelope {
	return pushEnvelope{
		Subscription: subscription,
		Message: pushMessage{
			Data:        base64.StdEncoding.EncodeToString(msg.data),
			Attributes:  msg.attributes,
			MessageID:   messageID,
			OrderingKey: msg.orderingKey,
			PublishTime: at.UTC().Format(time.RFC3339Nano),
		},
	}
}
