package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/meetdesk/internal/meetings/application"
	sharedApplication "github.com/felixgeelhaar/meetdesk/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
)

// AddAttendeeCommand books Attendee into a meeting for [From, To].
type AddAttendeeCommand struct {
	Actor       string
	MeetingName string
	Attendee    string
	From        time.Time
	To          time.Time
}

// RemoveAttendeeCommand takes Attendee out of a meeting.
type RemoveAttendeeCommand struct {
	Actor       string
	MeetingName string
	Attendee    string
}

// AttendanceHandler handles attendee commands.
type AttendanceHandler struct {
	store     *application.MeetingStore
	uow       sharedApplication.UnitOfWork
	publisher sharedApplication.EventPublisher
	logger    *slog.Logger
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(store *application.MeetingStore, uow sharedApplication.UnitOfWork, publisher sharedApplication.EventPublisher, logger *slog.Logger) *AttendanceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttendanceHandler{
		store:     store,
		uow:       uow,
		publisher: publisher,
		logger:    logger,
	}
}

// Add executes the AddAttendeeCommand.
func (h *AttendanceHandler) Add(ctx context.Context, cmd AddAttendeeCommand) error {
	return h.run(ctx, actorOf(cmd.Actor, cmd.Attendee), func(txCtx context.Context) error {
		interval := sharedDomain.Interval{From: cmd.From, To: cmd.To}
		return h.store.AddAttendee(txCtx, cmd.MeetingName, cmd.Attendee, interval)
	})
}

// Remove executes the RemoveAttendeeCommand.
func (h *AttendanceHandler) Remove(ctx context.Context, cmd RemoveAttendeeCommand) error {
	return h.run(ctx, actorOf(cmd.Actor, cmd.Attendee), func(txCtx context.Context) error {
		return h.store.RemoveAttendee(txCtx, cmd.MeetingName, cmd.Attendee)
	})
}

func (h *AttendanceHandler) run(ctx context.Context, actor string, fn func(ctx context.Context) error) error {
	events, err := sharedApplication.InUnitOfWork(ctx, h.uow, func(txCtx context.Context) ([]sharedDomain.DomainEvent, error) {
		if err := fn(txCtx); err != nil {
			return nil, err
		}
		return h.store.PullDomainEvents(), nil
	})
	if err != nil {
		return err
	}

	sharedApplication.PublishEvents(ctx, h.publisher, h.logger, actor, events)
	return nil
}

func actorOf(actor, fallback string) string {
	if actor != "" {
		return actor
	}
	return fallback
}
