package commands

import (
	"context"

	"github.com/felixgeelhaar/meetdesk/internal/identity/application"
	sharedApplication "github.com/felixgeelhaar/meetdesk/internal/shared/application"
)

// LoginUserCommand contains the credentials to log in with.
type LoginUserCommand struct {
	Username string
	Password string
}

// LoginUserHandler handles the LoginUserCommand.
type LoginUserHandler struct {
	session *application.Session
	uow     sharedApplication.UnitOfWork
}

// NewLoginUserHandler creates a new LoginUserHandler.
func NewLoginUserHandler(session *application.Session, uow sharedApplication.UnitOfWork) *LoginUserHandler {
	return &LoginUserHandler{session: session, uow: uow}
}

// Handle executes the LoginUserCommand.
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(context.Context) error {
		return h.session.Login(cmd.Username, cmd.Password)
	})
}

// LogoutUserHandler ends the current session.
type LogoutUserHandler struct {
	session *application.Session
}

// NewLogoutUserHandler creates a new LogoutUserHandler.
func NewLogoutUserHandler(session *application.Session) *LogoutUserHandler {
	return &LogoutUserHandler{session: session}
}

// Handle logs the session out.
func (h *LogoutUserHandler) Handle(context.Context) error {
	h.session.Logout()
	return nil
}
