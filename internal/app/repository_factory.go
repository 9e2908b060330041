package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	identityDomain "github.com/felixgeelhaar/meetdesk/internal/identity/domain"
	identityPersistence "github.com/felixgeelhaar/meetdesk/internal/identity/infrastructure/persistence"
	meetingsDomain "github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	meetingsPersistence "github.com/felixgeelhaar/meetdesk/internal/meetings/infrastructure/persistence"
	"github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/database/sqlite"
	"github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/security"
)

// RepositoryFactory creates repositories based on the storage driver.
type RepositoryFactory struct {
	cfg database.Config
	db  *sql.DB
}

// NewRepositoryFactory opens the storage backend described by cfg. For the
// sqlite driver the database is opened and migrated.
func NewRepositoryFactory(ctx context.Context, cfg database.Config, logger *slog.Logger) (*RepositoryFactory, error) {
	if !cfg.Driver.IsValid() {
		return nil, fmt.Errorf("unsupported driver: %s", cfg.Driver)
	}

	f := &RepositoryFactory{cfg: cfg}
	if cfg.Driver != database.DriverSQLite {
		return f, nil
	}

	path := cfg.ResolvedSQLitePath()
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	applied, err := migrations.RunSQLiteMigrations(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, name := range applied {
		logger.Info("applied SQLite migration", "path", path, "migration", name)
	}

	f.db = db
	return f, nil
}

// Driver returns the configured storage driver.
func (f *RepositoryFactory) Driver() database.Driver {
	return f.cfg.Driver
}

// UserRepository creates a user repository for the configured driver.
func (f *RepositoryFactory) UserRepository() (identityDomain.UserRepository, error) {
	switch f.cfg.Driver {
	case database.DriverJSON:
		path, err := security.ResolveDataFile(f.cfg.UsersFile, f.cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("invalid users file: %w", err)
		}
		return identityPersistence.NewJSONUserRepository(path), nil

	case database.DriverSQLite:
		return identityPersistence.NewSQLiteUserRepository(f.db), nil

	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.cfg.Driver)
	}
}

// MeetingRepository creates a meeting repository for the configured driver.
func (f *RepositoryFactory) MeetingRepository() (meetingsDomain.Repository, error) {
	switch f.cfg.Driver {
	case database.DriverJSON:
		path, err := security.ResolveDataFile(f.cfg.MeetingsFile, f.cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("invalid meetings file: %w", err)
		}
		return meetingsPersistence.NewJSONMeetingRepository(path), nil

	case database.DriverSQLite:
		return meetingsPersistence.NewSQLiteMeetingRepository(f.db), nil

	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.cfg.Driver)
	}
}

// Close releases the SQLite connection, if any.
func (f *RepositoryFactory) Close() error {
	if f.db == nil {
		return nil
	}
	return f.db.Close()
}
