package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/meetdesk/internal/identity/application"
	"github.com/felixgeelhaar/meetdesk/internal/identity/domain"
	sharedApplication "github.com/felixgeelhaar/meetdesk/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
)

// RegisterUserCommand contains the data needed to register a user.
type RegisterUserCommand struct {
	Username string
	Password string
}

// RegisterUserHandler handles the RegisterUserCommand.
type RegisterUserHandler struct {
	store     *application.UserStore
	uow       sharedApplication.UnitOfWork
	publisher sharedApplication.EventPublisher
	logger    *slog.Logger
}

// NewRegisterUserHandler creates a new RegisterUserHandler.
func NewRegisterUserHandler(store *application.UserStore, uow sharedApplication.UnitOfWork, publisher sharedApplication.EventPublisher, logger *slog.Logger) *RegisterUserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegisterUserHandler{
		store:     store,
		uow:       uow,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the RegisterUserCommand.
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	events, err := sharedApplication.InUnitOfWork(ctx, h.uow, func(txCtx context.Context) ([]sharedDomain.DomainEvent, error) {
		if cmd.Username == "" || cmd.Password == "" {
			return nil, domain.ErrEmptyCredentials
		}
		if h.store.Exists(cmd.Username) {
			return nil, domain.ErrUsernameTaken
		}

		ok, err := h.store.Register(txCtx, cmd.Username, cmd.Password)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrUsernameTaken
		}
		return h.store.PullDomainEvents(), nil
	})
	if err != nil {
		return err
	}

	sharedApplication.PublishEvents(ctx, h.publisher, h.logger, cmd.Username, events)
	return nil
}
