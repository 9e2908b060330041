package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
	sharedPersistence "github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/persistence"
)

// SQLiteMeetingRepository stores the meeting collection as a table snapshot.
type SQLiteMeetingRepository struct {
	dbConn *sql.DB
}

// NewSQLiteMeetingRepository creates a new SQLite meeting repository.
func NewSQLiteMeetingRepository(dbConn *sql.DB) *SQLiteMeetingRepository {
	return &SQLiteMeetingRepository{dbConn: dbConn}
}

// LoadAll reads every meeting and its attendees in stored order.
func (r *SQLiteMeetingRepository) LoadAll(ctx context.Context) ([]*domain.Meeting, error) {
	attendees, err := r.loadAttendees(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.dbConn.QueryContext(ctx, `
		SELECT name, organizer, description, category, kind, time_from, time_to
		FROM meetings
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings: %w", err)
	}
	defer rows.Close()

	var meetings []*domain.Meeting
	for rows.Next() {
		var name, organizer, description, category, kind, from, to string
		if err := rows.Scan(&name, &organizer, &description, &category, &kind, &from, &to); err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		interval, err := sharedPersistence.ParseInterval(from, to)
		if err != nil {
			return nil, fmt.Errorf("meeting %s: %w", name, err)
		}
		m, err := rehydrate(name, organizer, description, category, kind, interval, attendees[name])
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

func (r *SQLiteMeetingRepository) loadAttendees(ctx context.Context) (map[string][]sharedDomain.ScheduleEntry, error) {
	rows, err := r.dbConn.QueryContext(ctx, `
		SELECT meeting_name, username, time_from, time_to
		FROM meeting_attendees
		ORDER BY meeting_name, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendees: %w", err)
	}
	defer rows.Close()

	attendees := make(map[string][]sharedDomain.ScheduleEntry)
	for rows.Next() {
		var meetingName, username, from, to string
		if err := rows.Scan(&meetingName, &username, &from, &to); err != nil {
			return nil, fmt.Errorf("failed to scan attendee: %w", err)
		}
		interval, err := sharedPersistence.ParseInterval(from, to)
		if err != nil {
			return nil, fmt.Errorf("attendee %s of %s: %w", username, meetingName, err)
		}
		attendees[meetingName] = append(attendees[meetingName], sharedDomain.NewScheduleEntry(username, interval))
	}
	return attendees, rows.Err()
}

// SaveAll replaces both meeting tables inside one transaction.
func (r *SQLiteMeetingRepository) SaveAll(ctx context.Context, meetings []*domain.Meeting) (err error) {
	tx, err := r.dbConn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM meeting_attendees`); err != nil {
		return fmt.Errorf("failed to clear attendees: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM meetings`); err != nil {
		return fmt.Errorf("failed to clear meetings: %w", err)
	}

	for i, m := range meetings {
		interval := m.Interval()
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO meetings (name, organizer, description, category, kind, time_from, time_to, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			m.Name(), m.Organizer(), m.Description(), string(m.Category()), string(m.Kind()),
			sharedPersistence.FormatTime(interval.From), sharedPersistence.FormatTime(interval.To), i,
		); err != nil {
			return fmt.Errorf("failed to insert meeting %s: %w", m.Name(), err)
		}
		for j, a := range m.Attendees() {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO meeting_attendees (meeting_name, position, username, time_from, time_to)
				VALUES (?, ?, ?, ?, ?)`,
				m.Name(), j, a.Name,
				sharedPersistence.FormatTime(a.From), sharedPersistence.FormatTime(a.To),
			); err != nil {
				return fmt.Errorf("failed to insert attendee %s of %s: %w", a.Name, m.Name(), err)
			}
		}
	}

	return tx.Commit()
}
