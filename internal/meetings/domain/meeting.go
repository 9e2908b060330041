package domain

import (
	"strings"

	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
)

var (
	ErrInvalidMeetingArguments  = sharedDomain.NewError(sharedDomain.ErrValidation, "invalid meeting arguments")
	ErrOrganizerNotFound        = sharedDomain.NewError(sharedDomain.ErrNotFound, "responsible user doesn't exist")
	ErrDuplicateMeeting         = sharedDomain.NewError(sharedDomain.ErrConflict, "meeting with that name already exists")
	ErrInvalidMeetingDates      = sharedDomain.NewError(sharedDomain.ErrValidation, "invalid meeting dates")
	ErrOrganizerBusy            = sharedDomain.NewError(sharedDomain.ErrConflict, "organizer is busy")
	ErrMeetingNotFound          = sharedDomain.NewError(sharedDomain.ErrNotFound, "meeting doesn't exist")
	ErrNotOrganizer             = sharedDomain.NewError(sharedDomain.ErrUnauthorized, "only the responsible person can remove the meeting")
	ErrAttendeeNotFound         = sharedDomain.NewError(sharedDomain.ErrNotFound, "attendee doesn't exist")
	ErrAlreadyAttending         = sharedDomain.NewError(sharedDomain.ErrConflict, "already attending")
	ErrAttendanceOutsideMeeting = sharedDomain.NewError(sharedDomain.ErrValidation, "attendance outside meeting time")
	ErrAttendeeBusy             = sharedDomain.NewError(sharedDomain.ErrConflict, "attendee is busy")
	ErrCannotRemoveOrganizer    = sharedDomain.NewError(sharedDomain.ErrValidation, "cannot remove organizer")
	ErrNotAttending             = sharedDomain.NewError(sharedDomain.ErrNotFound, "not attending")
	ErrInvalidCategory          = sharedDomain.NewError(sharedDomain.ErrValidation, "invalid meeting category")
	ErrInvalidKind              = sharedDomain.NewError(sharedDomain.ErrValidation, "invalid meeting type")
)

// Category classifies what a meeting is about.
type Category string

const (
	CategoryCodeMonkey   Category = "CodeMonkey"
	CategoryHub          Category = "Hub"
	CategoryShort        Category = "Short"
	CategoryTeamBuilding Category = "TeamBuilding"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryCodeMonkey, CategoryHub, CategoryShort, CategoryTeamBuilding}

// IsValid checks if the category is supported.
func (c Category) IsValid() bool {
	switch c {
	case CategoryCodeMonkey, CategoryHub, CategoryShort, CategoryTeamBuilding:
		return true
	default:
		return false
	}
}

// ParseCategory matches free text against category names, ignoring case.
func ParseCategory(value string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(value), string(c)) {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

// Kind says whether a meeting happens online or on site.
type Kind string

const (
	KindLive     Kind = "Live"
	KindInPerson Kind = "InPerson"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindLive, KindInPerson}

// IsValid checks if the kind is supported.
func (k Kind) IsValid() bool {
	return k == KindLive || k == KindInPerson
}

// ParseKind matches free text against kind names, ignoring case.
func ParseKind(value string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(strings.TrimSpace(value), string(k)) {
			return k, nil
		}
	}
	return "", ErrInvalidKind
}

// Meeting is a scheduled meeting and the people attending it. The organizer
// always attends for the whole meeting.
type Meeting struct {
	sharedDomain.BaseAggregateRoot
	name        string
	organizer   string
	description string
	category    Category
	kind        Kind
	interval    sharedDomain.Interval
	attendees   []sharedDomain.ScheduleEntry
}

// NewMeeting creates a meeting with the organizer attending its full span.
func NewMeeting(name, organizer, description string, category Category, kind Kind, interval sharedDomain.Interval) (*Meeting, error) {
	if name == "" || organizer == "" || description == "" || !category.IsValid() || !kind.IsValid() {
		return nil, ErrInvalidMeetingArguments
	}
	if !interval.IsValid() {
		return nil, ErrInvalidMeetingDates
	}

	m := &Meeting{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(AggregateType, name),
		name:              name,
		organizer:         organizer,
		description:       description,
		category:          category,
		kind:              kind,
		interval:          interval,
		attendees:         []sharedDomain.ScheduleEntry{sharedDomain.NewScheduleEntry(organizer, interval)},
	}
	m.AddDomainEvent(NewMeetingCreated(m))
	return m, nil
}

// RehydrateMeeting rebuilds a meeting from persistence.
func RehydrateMeeting(name, organizer, description string, category Category, kind Kind, interval sharedDomain.Interval, attendees []sharedDomain.ScheduleEntry) *Meeting {
	return &Meeting{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(AggregateType, name),
		name:              name,
		organizer:         organizer,
		description:       description,
		category:          category,
		kind:              kind,
		interval:          interval,
		attendees:         append([]sharedDomain.ScheduleEntry(nil), attendees...),
	}
}

// Getters
func (m *Meeting) Name() string                    { return m.name }
func (m *Meeting) Organizer() string               { return m.organizer }
func (m *Meeting) Description() string             { return m.description }
func (m *Meeting) Category() Category              { return m.category }
func (m *Meeting) Kind() Kind                      { return m.kind }
func (m *Meeting) Interval() sharedDomain.Interval { return m.interval }

// Attendees returns a copy of the attendee entries in joining order.
func (m *Meeting) Attendees() []sharedDomain.ScheduleEntry {
	return append([]sharedDomain.ScheduleEntry(nil), m.attendees...)
}

// AttendeeNames returns the attendee usernames in joining order.
func (m *Meeting) AttendeeNames() []string {
	names := make([]string, 0, len(m.attendees))
	for _, a := range m.attendees {
		names = append(names, a.Name)
	}
	return names
}

// Attendee returns the attendance entry of username.
func (m *Meeting) Attendee(username string) (sharedDomain.ScheduleEntry, bool) {
	for _, a := range m.attendees {
		if a.Name == username {
			return a, true
		}
	}
	return sharedDomain.ScheduleEntry{}, false
}

// IsAttending reports whether username attends the meeting.
func (m *Meeting) IsAttending(username string) bool {
	_, ok := m.Attendee(username)
	return ok
}

// CanAdmit checks that username may attend during interval, without
// looking at the attendee's own schedule.
func (m *Meeting) CanAdmit(username string, interval sharedDomain.Interval) error {
	if m.IsAttending(username) {
		return ErrAlreadyAttending
	}
	if !interval.IsValid() || !m.interval.Contains(interval) {
		return ErrAttendanceOutsideMeeting
	}
	return nil
}

// AddAttendee records username as attending during interval.
func (m *Meeting) AddAttendee(username string, interval sharedDomain.Interval) error {
	if username == "" {
		return ErrAttendeeNotFound
	}
	if err := m.CanAdmit(username, interval); err != nil {
		return err
	}
	m.attendees = append(m.attendees, sharedDomain.NewScheduleEntry(username, interval))
	m.AddDomainEvent(NewAttendeeAdded(m, username, interval))
	return nil
}

// CanDismiss checks that username attends and is not the organizer.
func (m *Meeting) CanDismiss(username string) error {
	if username == m.organizer {
		return ErrCannotRemoveOrganizer
	}
	if !m.IsAttending(username) {
		return ErrNotAttending
	}
	return nil
}

// RemoveAttendee drops username from the attendee list.
func (m *Meeting) RemoveAttendee(username string) error {
	if err := m.CanDismiss(username); err != nil {
		return err
	}
	for i, a := range m.attendees {
		if a.Name == username {
			m.attendees = append(m.attendees[:i:i], m.attendees[i+1:]...)
			break
		}
	}
	m.AddDomainEvent(NewAttendeeRemoved(m, username))
	return nil
}

// Remove checks that caller organizes the meeting and records its removal.
func (m *Meeting) Remove(caller string) error {
	if caller == "" || caller != m.organizer {
		return ErrNotOrganizer
	}
	m.AddDomainEvent(NewMeetingRemoved(m, caller))
	return nil
}

// Clone returns an independent copy without pending domain events.
func (m *Meeting) Clone() *Meeting {
	return RehydrateMeeting(m.name, m.organizer, m.description, m.category, m.kind, m.interval, m.attendees)
}
