package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
	"github.com/felixgeelhaar/meetdesk/pkg/observability"
)

// UserDirectory is the part of the user store meetings depend on: existence,
// availability and schedule bookkeeping.
type UserDirectory interface {
	Exists(username string) bool
	IsBusy(username string, interval sharedDomain.Interval) bool
	AddScheduleEntry(ctx context.Context, username string, entry sharedDomain.ScheduleEntry) error
	RemoveScheduleEntry(ctx context.Context, username, meetingName string) error
	ReleaseMeeting(ctx context.Context, meetingName string, usernames []string) error
	// Checkpoint captures the listed users; calling the returned function
	// puts them back in memory and rewrites the user collection.
	Checkpoint(usernames ...string) func(ctx context.Context) error
}

// MeetingSpec describes a meeting to create.
type MeetingSpec struct {
	Name        string
	Organizer   string
	Description string
	Category    domain.Category
	Kind        domain.Kind
	Interval    sharedDomain.Interval
}

// MeetingStore owns every meeting and keeps attendee lists and user
// schedules in step. Users are written first and meetings second; when the
// meeting write fails the user side is compensated so no partial change
// stays visible.
//
// MeetingStore is not safe for concurrent use; callers serialize access
// through a unit of work.
type MeetingStore struct {
	repo     domain.Repository
	users    UserDirectory
	logger   *slog.Logger
	meetings map[string]*domain.Meeting
	order    []string
	pending  []sharedDomain.DomainEvent
}

// NewMeetingStore loads every stored meeting. An unreadable store is an error.
func NewMeetingStore(ctx context.Context, repo domain.Repository, users UserDirectory, logger *slog.Logger) (*MeetingStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	loaded, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load meetings: %w", err)
	}

	s := &MeetingStore{
		repo:     repo,
		users:    users,
		logger:   logger,
		meetings: make(map[string]*domain.Meeting, len(loaded)),
	}
	for _, m := range loaded {
		if _, dup := s.meetings[m.Name()]; dup {
			logger.Warn("skipping duplicate stored meeting", "meeting", m.Name())
			continue
		}
		s.meetings[m.Name()] = m
		s.order = append(s.order, m.Name())
	}

	logger.Debug("meeting store loaded", "meetings", len(s.order))
	return s, nil
}

// AddMeeting creates a meeting with its organizer attending the full span.
func (s *MeetingStore) AddMeeting(ctx context.Context, spec MeetingSpec) (*domain.Meeting, error) {
	if spec.Name == "" || spec.Organizer == "" || spec.Description == "" ||
		!spec.Category.IsValid() || !spec.Kind.IsValid() {
		return nil, domain.ErrInvalidMeetingArguments
	}
	if !s.users.Exists(spec.Organizer) {
		return nil, domain.ErrOrganizerNotFound
	}
	if _, exists := s.meetings[spec.Name]; exists {
		return nil, domain.ErrDuplicateMeeting
	}
	if !spec.Interval.IsValid() {
		return nil, domain.ErrInvalidMeetingDates
	}
	if s.users.IsBusy(spec.Organizer, spec.Interval) {
		return nil, domain.ErrOrganizerBusy
	}

	m, err := domain.NewMeeting(spec.Name, spec.Organizer, spec.Description, spec.Category, spec.Kind, spec.Interval)
	if err != nil {
		return nil, err
	}

	restore := s.users.Checkpoint(spec.Organizer)
	entry := sharedDomain.NewScheduleEntry(spec.Name, spec.Interval)
	if err := s.users.AddScheduleEntry(ctx, spec.Organizer, entry); err != nil {
		return nil, err
	}

	s.meetings[spec.Name] = m
	s.order = append(s.order, spec.Name)
	if err := s.persist(ctx); err != nil {
		delete(s.meetings, spec.Name)
		s.order = s.order[:len(s.order)-1]
		s.compensate(ctx, restore)
		return nil, err
	}

	s.pending = append(s.pending, m.PullDomainEvents()...)
	s.logger.Info("meeting created",
		"meeting", spec.Name,
		"organizer", spec.Organizer,
		"from", spec.Interval.From,
		"to", spec.Interval.To,
	)
	return m.Clone(), nil
}

// RemoveMeeting deletes a meeting on behalf of its organizer and strips it
// from every attendee's schedule.
func (s *MeetingStore) RemoveMeeting(ctx context.Context, caller, name string) error {
	m, ok := s.meetings[name]
	if !ok {
		return domain.ErrMeetingNotFound
	}
	if err := m.Remove(caller); err != nil {
		return err
	}

	attendees := m.AttendeeNames()
	restore := s.users.Checkpoint(attendees...)
	if err := s.users.ReleaseMeeting(ctx, name, attendees); err != nil {
		m.ClearDomainEvents()
		return err
	}

	index := slices.Index(s.order, name)
	delete(s.meetings, name)
	s.order = slices.Delete(s.order, index, index+1)
	if err := s.persist(ctx); err != nil {
		m.ClearDomainEvents()
		s.meetings[name] = m
		s.order = slices.Insert(s.order, index, name)
		s.compensate(ctx, restore)
		return err
	}

	s.pending = append(s.pending, m.PullDomainEvents()...)
	s.logger.Info("meeting removed", "meeting", name, "removed_by", caller, "attendees", len(attendees))
	return nil
}

// AddAttendee records attendee as joining the meeting during interval.
func (s *MeetingStore) AddAttendee(ctx context.Context, meetingName, attendee string, interval sharedDomain.Interval) error {
	m, ok := s.meetings[meetingName]
	if !ok {
		return domain.ErrMeetingNotFound
	}
	if !s.users.Exists(attendee) {
		return domain.ErrAttendeeNotFound
	}
	if err := m.CanAdmit(attendee, interval); err != nil {
		return err
	}
	if s.users.IsBusy(attendee, interval) {
		return domain.ErrAttendeeBusy
	}

	restore := s.users.Checkpoint(attendee)
	if err := s.users.AddScheduleEntry(ctx, attendee, sharedDomain.NewScheduleEntry(meetingName, interval)); err != nil {
		return err
	}

	before := m.Clone()
	if err := m.AddAttendee(attendee, interval); err != nil {
		s.compensate(ctx, restore)
		return err
	}
	if err := s.persist(ctx); err != nil {
		s.meetings[meetingName] = before
		s.compensate(ctx, restore)
		return err
	}

	s.pending = append(s.pending, m.PullDomainEvents()...)
	s.logger.Info("attendee added", "meeting", meetingName, "attendee", attendee)
	return nil
}

// RemoveAttendee drops attendee from the meeting and from their schedule.
func (s *MeetingStore) RemoveAttendee(ctx context.Context, meetingName, attendee string) error {
	m, ok := s.meetings[meetingName]
	if !ok {
		return domain.ErrMeetingNotFound
	}
	if !s.users.Exists(attendee) {
		return domain.ErrAttendeeNotFound
	}
	if err := m.CanDismiss(attendee); err != nil {
		return err
	}

	restore := s.users.Checkpoint(attendee)
	if err := s.users.RemoveScheduleEntry(ctx, attendee, meetingName); err != nil {
		if !errors.Is(err, sharedDomain.ErrNotFound) {
			return err
		}
		// the schedule already lacks the entry; drop the attendance anyway
		s.logger.Warn("attendee schedule was missing the meeting", "meeting", meetingName, "attendee", attendee)
	}

	before := m.Clone()
	if err := m.RemoveAttendee(attendee); err != nil {
		s.compensate(ctx, restore)
		return err
	}
	if err := s.persist(ctx); err != nil {
		s.meetings[meetingName] = before
		s.compensate(ctx, restore)
		return err
	}

	s.pending = append(s.pending, m.PullDomainEvents()...)
	s.logger.Info("attendee removed", "meeting", meetingName, "attendee", attendee)
	return nil
}

// ListMeetings returns copies of every meeting in creation order.
func (s *MeetingStore) ListMeetings() []*domain.Meeting {
	meetings := make([]*domain.Meeting, 0, len(s.order))
	for _, name := range s.order {
		meetings = append(meetings, s.meetings[name].Clone())
	}
	return meetings
}

// Exists reports whether a meeting with this name exists.
func (s *MeetingStore) Exists(name string) bool {
	_, ok := s.meetings[name]
	return ok
}

// Get returns a copy of the meeting.
func (s *MeetingStore) Get(name string) (*domain.Meeting, bool) {
	m, ok := s.meetings[name]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}

// PullDomainEvents returns the events recorded by successful mutations and
// clears them.
func (s *MeetingStore) PullDomainEvents() []sharedDomain.DomainEvent {
	events := s.pending
	s.pending = nil
	return events
}

func (s *MeetingStore) persist(ctx context.Context) error {
	meetings := make([]*domain.Meeting, 0, len(s.order))
	for _, name := range s.order {
		meetings = append(meetings, s.meetings[name])
	}
	timer := observability.StartTimer("save meetings").WithLogger(s.logger)
	err := s.repo.SaveAll(ctx, meetings)
	timer.Stop(ctx, err)
	if err != nil {
		s.logger.Error("failed to persist meetings", "error", err)
		return fmt.Errorf("failed to persist meetings: %w", err)
	}
	return nil
}

// compensate puts the users back as they were before a failed meeting write.
// Memory is restored even when rewriting the user file fails.
func (s *MeetingStore) compensate(ctx context.Context, restore func(ctx context.Context) error) {
	if err := restore(ctx); err != nil {
		s.logger.Error("failed to rewrite users after compensation", "error", err)
	}
}
