package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/meetdesk/internal/meetings/application"
	sharedApplication "github.com/felixgeelhaar/meetdesk/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
)

// RemoveMeetingCommand removes a meeting on behalf of Caller.
type RemoveMeetingCommand struct {
	Caller string
	Name   string
}

// RemoveMeetingHandler handles the RemoveMeetingCommand.
type RemoveMeetingHandler struct {
	store     *application.MeetingStore
	uow       sharedApplication.UnitOfWork
	publisher sharedApplication.EventPublisher
	logger    *slog.Logger
}

// NewRemoveMeetingHandler creates a new RemoveMeetingHandler.
func NewRemoveMeetingHandler(store *application.MeetingStore, uow sharedApplication.UnitOfWork, publisher sharedApplication.EventPublisher, logger *slog.Logger) *RemoveMeetingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RemoveMeetingHandler{
		store:     store,
		uow:       uow,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the RemoveMeetingCommand.
func (h *RemoveMeetingHandler) Handle(ctx context.Context, cmd RemoveMeetingCommand) error {
	events, err := sharedApplication.InUnitOfWork(ctx, h.uow, func(txCtx context.Context) ([]sharedDomain.DomainEvent, error) {
		if err := h.store.RemoveMeeting(txCtx, cmd.Caller, cmd.Name); err != nil {
			return nil, err
		}
		return h.store.PullDomainEvents(), nil
	})
	if err != nil {
		return err
	}

	sharedApplication.PublishEvents(ctx, h.publisher, h.logger, cmd.Caller, events)
	return nil
}
