package domain

import (
	"testing"
	"time"

	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(fromHour, toHour int) sharedDomain.Interval {
	day := time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)
	return sharedDomain.Interval{
		From: day.Add(time.Duration(fromHour) * time.Hour),
		To:   day.Add(time.Duration(toHour) * time.Hour),
	}
}

func newStandup(t *testing.T) *Meeting {
	t.Helper()
	m, err := NewMeeting("standup", "alice", "daily sync", CategoryHub, KindLive, span(9, 10))
	require.NoError(t, err)
	return m
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		wantErr  bool
	}{
		{"CodeMonkey", CategoryCodeMonkey, false},
		{"hub", CategoryHub, false},
		{" SHORT ", CategoryShort, false},
		{"teambuilding", CategoryTeamBuilding, false},
		{"party", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestParseKind(t *testing.T) {
	got, err := ParseKind("live")
	require.NoError(t, err)
	assert.Equal(t, KindLive, got)

	got, err = ParseKind("InPerson")
	require.NoError(t, err)
	assert.Equal(t, KindInPerson, got)

	_, err = ParseKind("hybrid")
	assert.ErrorIs(t, err, ErrInvalidKind)
	assert.False(t, Kind("hybrid").IsValid())
}

func TestNewMeeting(t *testing.T) {
	m := newStandup(t)

	assert.Equal(t, "standup", m.Name())
	assert.Equal(t, "alice", m.Organizer())
	assert.Equal(t, "daily sync", m.Description())
	assert.Equal(t, CategoryHub, m.Category())
	assert.Equal(t, KindLive, m.Kind())
	assert.Equal(t, sharedDomain.NameID(AggregateType, "standup"), m.ID())

	attendees := m.Attendees()
	require.Len(t, attendees, 1)
	assert.Equal(t, "alice", attendees[0].Name)
	assert.True(t, attendees[0].Interval.Equal(m.Interval()))
}

func TestNewMeeting_Validation(t *testing.T) {
	tests := []struct {
		name        string
		meetingName string
		organizer   string
		description string
		category    Category
		kind        Kind
		interval    sharedDomain.Interval
		err         error
	}{
		{"empty name", "", "alice", "d", CategoryHub, KindLive, span(9, 10), ErrInvalidMeetingArguments},
		{"empty organizer", "m", "", "d", CategoryHub, KindLive, span(9, 10), ErrInvalidMeetingArguments},
		{"empty description", "m", "alice", "", CategoryHub, KindLive, span(9, 10), ErrInvalidMeetingArguments},
		{"bad category", "m", "alice", "d", Category("x"), KindLive, span(9, 10), ErrInvalidMeetingArguments},
		{"bad kind", "m", "alice", "d", CategoryHub, Kind("x"), span(9, 10), ErrInvalidMeetingArguments},
		{"inverted dates", "m", "alice", "d", CategoryHub, KindLive, span(10, 9), ErrInvalidMeetingDates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMeeting(tt.meetingName, tt.organizer, tt.description, tt.category, tt.kind, tt.interval)
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, sharedDomain.ErrValidation)
		})
	}
}

func TestNewMeeting_ZeroLength(t *testing.T) {
	_, err := NewMeeting("instant", "alice", "d", CategoryShort, KindLive, span(9, 9))
	assert.NoError(t, err)
}

func TestMeeting_AddAttendee(t *testing.T) {
	m := newStandup(t)

	require.NoError(t, m.AddAttendee("bob", span(9, 10)))
	assert.True(t, m.IsAttending("bob"))
	assert.Equal(t, []string{"alice", "bob"}, m.AttendeeNames())

	assert.ErrorIs(t, m.AddAttendee("bob", span(9, 10)), ErrAlreadyAttending)
	assert.ErrorIs(t, m.AddAttendee("alice", span(9, 10)), ErrAlreadyAttending)
	assert.ErrorIs(t, m.AddAttendee("carol", span(8, 10)), ErrAttendanceOutsideMeeting)
	assert.ErrorIs(t, m.AddAttendee("carol", span(9, 11)), ErrAttendanceOutsideMeeting)
	assert.ErrorIs(t, m.AddAttendee("carol", span(10, 9)), ErrAttendanceOutsideMeeting)
	assert.ErrorIs(t, m.AddAttendee("", span(9, 10)), ErrAttendeeNotFound)

	// a partial attendance on the boundaries is fine
	require.NoError(t, m.AddAttendee("carol", span(10, 10)))
}

func TestMeeting_RemoveAttendee(t *testing.T) {
	m := newStandup(t)
	require.NoError(t, m.AddAttendee("bob", span(9, 10)))

	assert.ErrorIs(t, m.RemoveAttendee("alice"), ErrCannotRemoveOrganizer)
	assert.ErrorIs(t, m.RemoveAttendee("carol"), ErrNotAttending)

	require.NoError(t, m.RemoveAttendee("bob"))
	assert.False(t, m.IsAttending("bob"))
	assert.ErrorIs(t, m.RemoveAttendee("bob"), ErrNotAttending)
}

func TestMeeting_Remove(t *testing.T) {
	m := newStandup(t)
	m.ClearDomainEvents()

	err := m.Remove("bob")
	assert.ErrorIs(t, err, ErrNotOrganizer)
	assert.ErrorIs(t, err, sharedDomain.ErrUnauthorized)
	assert.ErrorIs(t, m.Remove(""), ErrNotOrganizer)
	assert.Empty(t, m.DomainEvents())

	require.NoError(t, m.Remove("alice"))
	require.Len(t, m.DomainEvents(), 1)
}

func TestMeeting_CloneIsIndependent(t *testing.T) {
	m := newStandup(t)

	clone := m.Clone()
	assert.Empty(t, clone.DomainEvents())
	require.NoError(t, clone.AddAttendee("bob", span(9, 10)))

	assert.False(t, m.IsAttending("bob"))
	assert.Equal(t, m.ID(), clone.ID())
}
