package subscribers

import (
	"context"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	"github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/eventbus"
)

// ActivitySubscriber writes an activity log line for every published event.
type ActivitySubscriber struct {
	logger  *slog.Logger
	enabled bool
}

// NewActivitySubscriber creates a new activity subscriber.
func NewActivitySubscriber(logger *slog.Logger) *ActivitySubscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivitySubscriber{
		logger:  logger.With("component", "activity"),
		enabled: true,
	}
}

// SetEnabled enables or disables the subscriber.
func (s *ActivitySubscriber) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// EventTypes returns the event types this subscriber handles.
func (s *ActivitySubscriber) EventTypes() []string {
	return []string{eventbus.AllEvents}
}

// meetingPayload covers the fields shared by the meeting events.
type meetingPayload struct {
	MeetingName string    `json:"meeting_name"`
	Organizer   string    `json:"organizer"`
	Attendee    string    `json:"attendee"`
	Attendees   []string  `json:"attendees"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
}

// Handle processes an event.
func (s *ActivitySubscriber) Handle(ctx context.Context, event *eventbus.ConsumedEvent) error {
	if !s.enabled {
		return nil
	}

	attrs := []any{
		"routing_key", event.RoutingKey,
		"aggregate_type", event.AggregateType,
		"actor", event.Metadata.Actor,
	}

	switch event.RoutingKey {
	case domain.RoutingKeyMeetingCreated:
		var p meetingPayload
		if err := event.DecodePayload(&p); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "meeting created", append(attrs,
			"meeting", p.MeetingName,
			"organizer", p.Organizer,
			"from", p.From,
			"to", p.To,
		)...)
	case domain.RoutingKeyMeetingRemoved:
		var p meetingPayload
		if err := event.DecodePayload(&p); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "meeting removed", append(attrs,
			"meeting", p.MeetingName,
			"released", len(p.Attendees),
		)...)
	case domain.RoutingKeyAttendeeAdded:
		var p meetingPayload
		if err := event.DecodePayload(&p); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "attendee added", append(attrs,
			"meeting", p.MeetingName,
			"attendee", p.Attendee,
			"from", p.From,
			"to", p.To,
		)...)
	case domain.RoutingKeyAttendeeRemoved:
		var p meetingPayload
		if err := event.DecodePayload(&p); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "attendee removed", append(attrs,
			"meeting", p.MeetingName,
			"attendee", p.Attendee,
		)...)
	default:
		s.logger.InfoContext(ctx, "event", attrs...)
	}
	return nil
}
