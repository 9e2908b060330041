package queries

import (
	"context"
	"strings"
	"time"

	"github.com/felixgeelhaar/meetdesk/internal/meetings/application"
	"github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	sharedApplication "github.com/felixgeelhaar/meetdesk/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// AttendeeDTO is an attendee as seen by readers.
type AttendeeDTO struct {
	Username string
	From     time.Time
	To       time.Time
}

// MeetingDTO is a read model for meetings.
type MeetingDTO struct {
	ID          uuid.UUID
	Name        string
	Organizer   string
	Description string
	Category    string
	Kind        string
	From        time.Time
	To          time.Time
	Attendees   []AttendeeDTO
}

// ListMeetingsQuery filters the meeting list. Zero values disable a filter.
type ListMeetingsQuery struct {
	// DescriptionContains and OrganizerContains match case-insensitively.
	DescriptionContains string
	OrganizerContains   string
	Category            domain.Category
	Kind                domain.Kind
	StartsFrom          time.Time
	EndsBy              time.Time
	MinAttendees        int
	MaxAttendees        int
}

// ListMeetingsHandler handles the ListMeetingsQuery.
type ListMeetingsHandler struct {
	store *application.MeetingStore
	uow   sharedApplication.UnitOfWork
}

// NewListMeetingsHandler creates a new ListMeetingsHandler.
func NewListMeetingsHandler(store *application.MeetingStore, uow sharedApplication.UnitOfWork) *ListMeetingsHandler {
	return &ListMeetingsHandler{store: store, uow: uow}
}

// Handle executes the ListMeetingsQuery. Meetings come back in creation order.
func (h *ListMeetingsHandler) Handle(ctx context.Context, query ListMeetingsQuery) ([]MeetingDTO, error) {
	return sharedApplication.InUnitOfWork(ctx, h.uow, func(context.Context) ([]MeetingDTO, error) {
		matching := lo.Filter(h.store.ListMeetings(), func(m *domain.Meeting, _ int) bool {
			return query.matches(m)
		})
		return lo.Map(matching, func(m *domain.Meeting, _ int) MeetingDTO {
			return toDTO(m)
		}), nil
	})
}

func (q ListMeetingsQuery) matches(m *domain.Meeting) bool {
	if q.DescriptionContains != "" &&
		!strings.Contains(strings.ToLower(m.Description()), strings.ToLower(q.DescriptionContains)) {
		return false
	}
	if q.OrganizerContains != "" &&
		!strings.Contains(strings.ToLower(m.Organizer()), strings.ToLower(q.OrganizerContains)) {
		return false
	}
	if q.Category != "" && m.Category() != q.Category {
		return false
	}
	if q.Kind != "" && m.Kind() != q.Kind {
		return false
	}

	interval := m.Interval()
	if !q.StartsFrom.IsZero() && interval.From.Before(q.StartsFrom) {
		return false
	}
	if !q.EndsBy.IsZero() && interval.To.After(q.EndsBy) {
		return false
	}

	count := len(m.Attendees())
	if q.MinAttendees > 0 && count < q.MinAttendees {
		return false
	}
	if q.MaxAttendees > 0 && count > q.MaxAttendees {
		return false
	}
	return true
}

func toDTO(m *domain.Meeting) MeetingDTO {
	interval := m.Interval()
	return MeetingDTO{
		ID:          m.ID(),
		Name:        m.Name(),
		Organizer:   m.Organizer(),
		Description: m.Description(),
		Category:    string(m.Category()),
		Kind:        string(m.Kind()),
		From:        interval.From,
		To:          interval.To,
		Attendees: lo.Map(m.Attendees(), func(a sharedDomain.ScheduleEntry, _ int) AttendeeDTO {
			return AttendeeDTO{Username: a.Name, From: a.Interval.From, To: a.Interval.To}
		}),
	}
}
