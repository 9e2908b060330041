package eventbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AllEvents is the routing key a consumer declares to receive every event.
const AllEvents = "*"

// EventConsumer handles specific event types.
type EventConsumer interface {
	// EventTypes returns the routing keys this consumer handles,
	// e.g. ["meetings.meeting.created"], or AllEvents.
	EventTypes() []string

	// Handle processes the event.
	Handle(ctx context.Context, event *ConsumedEvent) error
}

// ConsumedEvent is the envelope delivered to consumers.
type ConsumedEvent struct {
	EventID       uuid.UUID       `json:"event_id"`
	AggregateID   uuid.UUID       `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	RoutingKey    string          `json:"routing_key"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
	Metadata      EventMetadata   `json:"metadata,omitempty"`
}

// EventMetadata contains optional metadata about the event.
type EventMetadata struct {
	Actor         string    `json:"actor,omitempty"`
	CorrelationID uuid.UUID `json:"correlation_id,omitempty"`
}

// DecodePayload unmarshals the event payload into v.
func (e *ConsumedEvent) DecodePayload(v any) error {
	return json.Unmarshal(e.Payload, v)
}
