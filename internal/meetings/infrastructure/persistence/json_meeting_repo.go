package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
	sharedPersistence "github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/persistence"
)

type meetingRecord struct {
	MeetingName       string                             `json:"MeetingName"`
	ResponsiblePerson string                             `json:"ResponsiblePerson"`
	Description       string                             `json:"Description"`
	Category          string                             `json:"Category"`
	MeetType          string                             `json:"MeetType"`
	From              time.Time                          `json:"From"`
	To                time.Time                          `json:"To"`
	Attendees         []sharedPersistence.ScheduleRecord `json:"Attendees"`
}

// JSONMeetingRepository stores every meeting in one JSON file.
type JSONMeetingRepository struct {
	file *sharedPersistence.SnapshotFile[meetingRecord]
}

// NewJSONMeetingRepository creates a repository backed by the file at path.
func NewJSONMeetingRepository(path string) *JSONMeetingRepository {
	return &JSONMeetingRepository{file: sharedPersistence.NewSnapshotFile[meetingRecord](path)}
}

// LoadAll reads every meeting from the file.
func (r *JSONMeetingRepository) LoadAll(ctx context.Context) ([]*domain.Meeting, error) {
	records, err := r.file.Load()
	if err != nil {
		return nil, err
	}

	meetings := make([]*domain.Meeting, 0, len(records))
	for _, rec := range records {
		m, err := rehydrate(rec.MeetingName, rec.ResponsiblePerson, rec.Description, rec.Category, rec.MeetType,
			sharedDomain.Interval{From: rec.From, To: rec.To},
			sharedPersistence.FromScheduleRecords(rec.Attendees))
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, nil
}

// SaveAll rewrites the file with meetings.
func (r *JSONMeetingRepository) SaveAll(ctx context.Context, meetings []*domain.Meeting) error {
	records := make([]meetingRecord, 0, len(meetings))
	for _, m := range meetings {
		interval := m.Interval()
		records = append(records, meetingRecord{
			MeetingName:       m.Name(),
			ResponsiblePerson: m.Organizer(),
			Description:       m.Description(),
			Category:          string(m.Category()),
			MeetType:          string(m.Kind()),
			From:              interval.From,
			To:                interval.To,
			Attendees:         sharedPersistence.ToScheduleRecords(m.Attendees()),
		})
	}
	return r.file.Save(records)
}

// rehydrate rebuilds a stored meeting, rejecting unknown enum names.
func rehydrate(name, organizer, description, category, kind string, interval sharedDomain.Interval, attendees []sharedDomain.ScheduleEntry) (*domain.Meeting, error) {
	c := domain.Category(category)
	if !c.IsValid() {
		return nil, fmt.Errorf("meeting %s: %w", name, domain.ErrInvalidCategory)
	}
	k := domain.Kind(kind)
	if !k.IsValid() {
		return nil, fmt.Errorf("meeting %s: %w", name, domain.ErrInvalidKind)
	}
	return domain.RehydrateMeeting(name, organizer, description, c, k, interval, attendees), nil
}
