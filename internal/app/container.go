package app

import (
	"context"
	"fmt"
	"log/slog"

	identityApp "github.com/felixgeelhaar/meetdesk/internal/identity/application"
	identityCommands "github.com/felixgeelhaar/meetdesk/internal/identity/application/commands"
	meetingsApp "github.com/felixgeelhaar/meetdesk/internal/meetings/application"
	meetingCommands "github.com/felixgeelhaar/meetdesk/internal/meetings/application/commands"
	meetingQueries "github.com/felixgeelhaar/meetdesk/internal/meetings/application/queries"
	meetingSubs "github.com/felixgeelhaar/meetdesk/internal/meetings/application/subscribers"
	sharedApplication "github.com/felixgeelhaar/meetdesk/internal/shared/application"
	sharedCrypto "github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/crypto"
	"github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/eventbus"
	sharedPersistence "github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/persistence"
	"github.com/felixgeelhaar/meetdesk/pkg/config"
	"github.com/felixgeelhaar/meetdesk/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	factory *RepositoryFactory

	// Stores
	Users    *identityApp.UserStore
	Meetings *meetingsApp.MeetingStore
	Session  *identityApp.Session

	// Unit of Work
	UnitOfWork sharedApplication.UnitOfWork

	// Events
	EventBus           *eventbus.InProcessEventBus
	ActivitySubscriber *meetingSubs.ActivitySubscriber

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

// StorageConfig maps application settings onto the storage layer.
func StorageConfig(cfg *config.Config) (database.Config, error) {
	driver, err := database.ParseDriver(cfg.StoreDriver)
	if err != nil {
		return database.Config{}, err
	}
	return database.Config{
		Driver:       driver,
		DataDir:      cfg.DataDir,
		UsersFile:    cfg.UsersFile,
		MeetingsFile: cfg.MeetingsFile,
		SQLitePath:   cfg.SQLitePath,
	}, nil
}

// NewContainer loads both stores from the configured backend and wires
// every handler. Unreadable data is an error.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	storage, err := StorageConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid storage configuration: %w", err)
	}

	factory, err := NewRepositoryFactory(ctx, storage, logger)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		factory: factory,
	}
	if err := observability.TimeOperation(ctx, logger, "load stores", c.wire); err != nil {
		c.Close()
		return nil, err
	}

	logger.Debug("container ready",
		"driver", storage.Driver,
		"users", len(c.Users.Users()),
		"meetings", len(c.Meetings.ListMeetings()),
	)
	return c, nil
}

func (c *Container) wire(ctx context.Context) error {
	userRepo, err := c.factory.UserRepository()
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}
	meetingRepo, err := c.factory.MeetingRepository()
	if err != nil {
		return fmt.Errorf("failed to create meeting repository: %w", err)
	}

	hasher := sharedCrypto.NewPBKDF2Hasher(c.Config.KDFIterations)

	c.Users, err = identityApp.NewUserStore(ctx, userRepo, hasher, c.Logger.With("store", "users"))
	if err != nil {
		return err
	}
	c.Meetings, err = meetingsApp.NewMeetingStore(ctx, meetingRepo, c.Users, c.Logger.With("store", "meetings"))
	if err != nil {
		return err
	}
	c.Session = identityApp.NewSession(c.Users, c.Logger)

	c.UnitOfWork = sharedPersistence.NewSerialUnitOfWork()

	c.EventBus = eventbus.NewInProcessEventBus(c.Logger)
	c.ActivitySubscriber = meetingSubs.NewActivitySubscriber(c.Logger)
	c.EventBus.RegisterConsumer(c.ActivitySubscriber)

	c.RegisterUserHandler = identityCommands.NewRegisterUserHandler(c.Users, c.UnitOfWork, c.EventBus, c.Logger)
	c.LoginUserHandler = identityCommands.NewLoginUserHandler(c.Session, c.UnitOfWork)
	c.LogoutUserHandler = identityCommands.NewLogoutUserHandler(c.Session)

	c.CreateMeetingHandler = meetingCommands.NewCreateMeetingHandler(c.Meetings, c.UnitOfWork, c.EventBus, c.Logger)
	c.RemoveMeetingHandler = meetingCommands.NewRemoveMeetingHandler(c.Meetings, c.UnitOfWork, c.EventBus, c.Logger)
	c.AttendanceHandler = meetingCommands.NewAttendanceHandler(c.Meetings, c.UnitOfWork, c.EventBus, c.Logger)

	c.ListMeetingsHandler = meetingQueries.NewListMeetingsHandler(c.Meetings, c.UnitOfWork)
	c.GetMeetingHandler = meetingQueries.NewGetMeetingHandler(c.Meetings, c.UnitOfWork)
	return nil
}

// Close releases the event bus and the storage backend.
func (c *Container) Close() {
	if c.EventBus != nil {
		if err := c.EventBus.Close(); err != nil {
			c.Logger.Warn("error closing event bus", "error", err)
		}
	}

	if c.factory != nil {
		if err := c.factory.Close(); err != nil {
			c.Logger.Warn("error closing storage", "error", err)
		} else if c.factory.Driver() == database.DriverSQLite {
			c.Logger.Debug("SQLite connection closed")
		}
	}
}
