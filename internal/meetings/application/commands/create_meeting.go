package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/meetdesk/internal/meetings/application"
	"github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	sharedApplication "github.com/felixgeelhaar/meetdesk/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
	"github.com/google/uuid"
)

// CreateMeetingCommand contains the data needed to create a meeting.
// The organizer is the user issuing the command.
type CreateMeetingCommand struct {
	Organizer   string
	Name        string
	Description string
	Category    domain.Category
	Kind        domain.Kind
	From        time.Time
	To          time.Time
}

// CreateMeetingResult contains the result of creating a meeting.
type CreateMeetingResult struct {
	MeetingID uuid.UUID
	Name      string
}

// CreateMeetingHandler handles the CreateMeetingCommand.
type CreateMeetingHandler struct {
	store     *application.MeetingStore
	uow       sharedApplication.UnitOfWork
	publisher sharedApplication.EventPublisher
	logger    *slog.Logger
}

// NewCreateMeetingHandler creates a new CreateMeetingHandler.
func NewCreateMeetingHandler(store *application.MeetingStore, uow sharedApplication.UnitOfWork, publisher sharedApplication.EventPublisher, logger *slog.Logger) *CreateMeetingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CreateMeetingHandler{
		store:     store,
		uow:       uow,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the CreateMeetingCommand.
func (h *CreateMeetingHandler) Handle(ctx context.Context, cmd CreateMeetingCommand) (*CreateMeetingResult, error) {
	var result *CreateMeetingResult
	events, err := sharedApplication.InUnitOfWork(ctx, h.uow, func(txCtx context.Context) ([]sharedDomain.DomainEvent, error) {
		meeting, err := h.store.AddMeeting(txCtx, application.MeetingSpec{
			Name:        cmd.Name,
			Organizer:   cmd.Organizer,
			Description: cmd.Description,
			Category:    cmd.Category,
			Kind:        cmd.Kind,
			Interval:    sharedDomain.Interval{From: cmd.From, To: cmd.To},
		})
		if err != nil {
			return nil, err
		}
		result = &CreateMeetingResult{MeetingID: meeting.ID(), Name: meeting.Name()}
		return h.store.PullDomainEvents(), nil
	})
	if err != nil {
		return nil, err
	}

	sharedApplication.PublishEvents(ctx, h.publisher, h.logger, cmd.Organizer, events)
	return result, nil
}
