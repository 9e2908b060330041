package cli

import (
	"errors"

	identityApp "github.com/felixgeelhaar/meetdesk/internal/identity/application"
	identityCommands "github.com/felixgeelhaar/meetdesk/internal/identity/application/commands"
	meetingCommands "github.com/felixgeelhaar/meetdesk/internal/meetings/application/commands"
	meetingQueries "github.com/felixgeelhaar/meetdesk/internal/meetings/application/queries"
)

var (
	// ErrNoApp is returned when a command runs before the application is wired.
	ErrNoApp = errors.New("meetdesk is not initialised; check the data directory and store driver")
	// ErrNotLoggedIn is returned by commands that need a current user.
	ErrNotLoggedIn = errors.New("not logged in; pass --user and --password or set MEETDESK_USER")
)

// App holds the CLI application dependencies.
type App struct {
	Session *identityApp.Session

	// Identity Handlers
	RegisterUserHandler *identityCommands.RegisterUserHandler
	LoginUserHandler    *identityCommands.LoginUserHandler
	LogoutUserHandler   *identityCommands.LogoutUserHandler

	// Meeting Command Handlers
	CreateMeetingHandler *meetingCommands.CreateMeetingHandler
	RemoveMeetingHandler *meetingCommands.RemoveMeetingHandler
	AttendanceHandler    *meetingCommands.AttendanceHandler

	// Meeting Query Handlers
	ListMeetingsHandler *meetingQueries.ListMeetingsHandler
	GetMeetingHandler   *meetingQueries.GetMeetingHandler
}

// NewApp creates a new CLI application.
func NewApp(
	session *identityApp.Session,
	registerUser *identityCommands.RegisterUserHandler,
	loginUser *identityCommands.LoginUserHandler,
	logoutUser *identityCommands.LogoutUserHandler,
	createMeeting *meetingCommands.CreateMeetingHandler,
	removeMeeting *meetingCommands.RemoveMeetingHandler,
	attendance *meetingCommands.AttendanceHandler,
	listMeetings *meetingQueries.ListMeetingsHandler,
	getMeeting *meetingQueries.GetMeetingHandler,
) *App {
	return &App{
		Session:              session,
		RegisterUserHandler:  registerUser,
		LoginUserHandler:     loginUser,
		LogoutUserHandler:    logoutUser,
		CreateMeetingHandler: createMeeting,
		RemoveMeetingHandler: removeMeeting,
		AttendanceHandler:    attendance,
		ListMeetingsHandler:  listMeetings,
		GetMeetingHandler:    getMeeting,
	}
}

// CurrentUser returns the logged-in username.
func (a *App) CurrentUser() (string, error) {
	if a == nil || a.Session == nil {
		return "", ErrNoApp
	}
	username, ok := a.Session.Current()
	if !ok {
		return "", ErrNotLoggedIn
	}
	return username, nil
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
