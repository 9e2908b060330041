package application

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/meetdesk/internal/shared/domain"
	"github.com/felixgeelhaar/meetdesk/pkg/observability"
	"github.com/google/uuid"
)

// EventPublisher delivers domain events once a unit of work has completed.
type EventPublisher interface {
	PublishDomainEvent(ctx context.Context, event domain.DomainEvent) error
}

type metadataSetter interface {
	SetMetadata(metadata domain.EventMetadata)
}

// NewEventMetadata creates command-scoped metadata for domain events. The
// correlation ID carried by ctx is reused when it is a UUID.
func NewEventMetadata(ctx context.Context, actor string) domain.EventMetadata {
	correlationID, err := uuid.Parse(observability.CorrelationIDFromContext(ctx))
	if err != nil {
		correlationID = uuid.New()
	}
	return domain.EventMetadata{
		CorrelationID: correlationID,
		Actor:         actor,
	}
}

// ApplyEventMetadata sets metadata on all events that support it.
func ApplyEventMetadata(events []domain.DomainEvent, metadata domain.EventMetadata) {
	for _, event := range events {
		if setter, ok := event.(metadataSetter); ok {
			setter.SetMetadata(metadata)
		}
	}
}

// PublishEvents stamps events with the actor and hands them to the publisher.
// Delivery failures are logged; the state change they describe has already
// been persisted.
func PublishEvents(ctx context.Context, publisher EventPublisher, logger *slog.Logger, actor string, events []domain.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}

	ApplyEventMetadata(events, NewEventMetadata(ctx, actor))
	for _, event := range events {
		if err := publisher.PublishDomainEvent(ctx, event); err != nil {
			logger.Warn("failed to publish domain event",
				"routing_key", event.RoutingKey(),
				"event_id", event.EventID(),
				"error", err,
			)
		}
	}
}
