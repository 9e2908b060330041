package domain

import (
	"time"

	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
)

const (
	AggregateType = "Meeting"

	RoutingKeyMeetingCreated  = "meetings.meeting.created"
	RoutingKeyMeetingRemoved  = "meetings.meeting.removed"
	RoutingKeyAttendeeAdded   = "meetings.attendee.added"
	RoutingKeyAttendeeRemoved = "meetings.attendee.removed"
)

// MeetingCreated is emitted when a meeting is created.
type MeetingCreated struct {
	sharedDomain.BaseEvent
	MeetingName string    `json:"meeting_name"`
	Organizer   string    `json:"organizer"`
	Category    string    `json:"category"`
	Kind        string    `json:"kind"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
}

// NewMeetingCreated creates a MeetingCreated event.
func NewMeetingCreated(m *Meeting) *MeetingCreated {
	return &MeetingCreated{
		BaseEvent:   sharedDomain.NewBaseEvent(m.ID(), AggregateType, RoutingKeyMeetingCreated),
		MeetingName: m.Name(),
		Organizer:   m.Organizer(),
		Category:    string(m.Category()),
		Kind:        string(m.Kind()),
		From:        m.Interval().From,
		To:          m.Interval().To,
	}
}

// MeetingRemoved is emitted when the organizer removes a meeting.
type MeetingRemoved struct {
	sharedDomain.BaseEvent
	MeetingName string   `json:"meeting_name"`
	RemovedBy   string   `json:"removed_by"`
	Attendees   []string `json:"attendees"`
}

// NewMeetingRemoved creates a MeetingRemoved event.
func NewMeetingRemoved(m *Meeting, removedBy string) *MeetingRemoved {
	return &MeetingRemoved{
		BaseEvent:   sharedDomain.NewBaseEvent(m.ID(), AggregateType, RoutingKeyMeetingRemoved),
		MeetingName: m.Name(),
		RemovedBy:   removedBy,
		Attendees:   m.AttendeeNames(),
	}
}

// AttendeeAdded is emitted when someone joins a meeting.
type AttendeeAdded struct {
	sharedDomain.BaseEvent
	MeetingName string    `json:"meeting_name"`
	Attendee    string    `json:"attendee"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
}

// NewAttendeeAdded creates an AttendeeAdded event.
func NewAttendeeAdded(m *Meeting, attendee string, interval sharedDomain.Interval) *AttendeeAdded {
	return &AttendeeAdded{
		BaseEvent:   sharedDomain.NewBaseEvent(m.ID(), AggregateType, RoutingKeyAttendeeAdded),
		MeetingName: m.Name(),
		Attendee:    attendee,
		From:        interval.From,
		To:          interval.To,
	}
}

// AttendeeRemoved is emitted when someone leaves a meeting.
type AttendeeRemoved struct {
	sharedDomain.BaseEvent
	MeetingName string `json:"meeting_name"`
	Attendee    string `json:"attendee"`
}

// NewAttendeeRemoved creates an AttendeeRemoved event.
func NewAttendeeRemoved(m *Meeting, attendee string) *AttendeeRemoved {
	return &AttendeeRemoved{
		BaseEvent:   sharedDomain.NewBaseEvent(m.ID(), AggregateType, RoutingKeyAttendeeRemoved),
		MeetingName: m.Name(),
		Attendee:    attendee,
	}
}
