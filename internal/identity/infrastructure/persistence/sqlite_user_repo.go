package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/felixgeelhaar/meetdesk/internal/identity/domain"
	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
	sharedPersistence "github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/persistence"
)

// SQLiteUserRepository stores the user collection as a table snapshot.
type SQLiteUserRepository struct {
	dbConn *sql.DB
}

// NewSQLiteUserRepository creates a new SQLiteUserRepository.
func NewSQLiteUserRepository(dbConn *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{dbConn: dbConn}
}

// LoadAll reads every user and their schedule in stored order.
func (r *SQLiteUserRepository) LoadAll(ctx context.Context) ([]*domain.User, error) {
	schedules, err := r.loadSchedules(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.dbConn.QueryContext(ctx, `SELECT username, hash, salt FROM users ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var username, hash, salt string
		if err := rows.Scan(&username, &hash, &salt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, domain.RehydrateUser(username, hash, salt, schedules[username]))
	}
	return users, rows.Err()
}

func (r *SQLiteUserRepository) loadSchedules(ctx context.Context) (map[string][]sharedDomain.ScheduleEntry, error) {
	rows, err := r.dbConn.QueryContext(ctx,
		`SELECT username, name, time_from, time_to FROM user_schedule_entries ORDER BY username, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule entries: %w", err)
	}
	defer rows.Close()

	schedules := make(map[string][]sharedDomain.ScheduleEntry)
	for rows.Next() {
		var username, name, from, to string
		if err := rows.Scan(&username, &name, &from, &to); err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		interval, err := sharedPersistence.ParseInterval(from, to)
		if err != nil {
			return nil, fmt.Errorf("schedule entry %s of %s: %w", name, username, err)
		}
		schedules[username] = append(schedules[username], sharedDomain.NewScheduleEntry(name, interval))
	}
	return schedules, rows.Err()
}

// SaveAll replaces both user tables inside one transaction.
func (r *SQLiteUserRepository) SaveAll(ctx context.Context, users []*domain.User) (err error) {
	tx, err := r.dbConn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM user_schedule_entries`); err != nil {
		return fmt.Errorf("failed to clear schedule entries: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}

	for i, u := range users {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO users (username, hash, salt, position) VALUES (?, ?, ?, ?)`,
			u.Username(), u.Hash(), u.Salt(), i,
		); err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.Username(), err)
		}
		for j, entry := range u.Schedule() {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO user_schedule_entries (username, position, name, time_from, time_to) VALUES (?, ?, ?, ?, ?)`,
				u.Username(), j, entry.Name,
				sharedPersistence.FormatTime(entry.From), sharedPersistence.FormatTime(entry.To),
			); err != nil {
				return fmt.Errorf("failed to insert schedule entry for %s: %w", u.Username(), err)
			}
		}
	}

	return tx.Commit()
}
