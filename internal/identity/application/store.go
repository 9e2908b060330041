package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/meetdesk/internal/identity/domain"
	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
	"github.com/felixgeelhaar/meetdesk/pkg/observability"
)

// UserStore owns every registered user. Each successful mutation rewrites the
// whole collection through the repository; a failed write restores the
// in-memory state it replaced.
//
// UserStore is not safe for concurrent use; callers serialize access through
// a unit of work.
type UserStore struct {
	repo    domain.UserRepository
	hasher  domain.CredentialHasher
	logger  *slog.Logger
	users   map[string]*domain.User
	order   []string
	pending []sharedDomain.DomainEvent
}

// NewUserStore loads every stored user. An unreadable store is an error.
func NewUserStore(ctx context.Context, repo domain.UserRepository, hasher domain.CredentialHasher, logger *slog.Logger) (*UserStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	loaded, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	s := &UserStore{
		repo:   repo,
		hasher: hasher,
		logger: logger,
		users:  make(map[string]*domain.User, len(loaded)),
	}
	for _, u := range loaded {
		if _, dup := s.users[u.Username()]; dup {
			logger.Warn("skipping duplicate stored user", "username", u.Username())
			continue
		}
		s.users[u.Username()] = u
		s.order = append(s.order, u.Username())
	}

	logger.Debug("user store loaded", "users", len(s.order))
	return s, nil
}

// Register creates a user with a freshly salted credential. It reports false
// without error when either argument is empty or the username is taken.
func (s *UserStore) Register(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	if _, taken := s.users[username]; taken {
		return false, nil
	}

	salt, err := s.hasher.NewSalt()
	if err != nil {
		return false, err
	}
	hash, err := s.hasher.Derive(password, salt)
	if err != nil {
		return false, err
	}

	u, err := domain.NewUser(username, hash, salt)
	if err != nil {
		return false, err
	}

	s.users[username] = u
	s.order = append(s.order, username)
	if err := s.persist(ctx); err != nil {
		delete(s.users, username)
		s.order = s.order[:len(s.order)-1]
		return false, err
	}

	s.pending = append(s.pending, u.PullDomainEvents()...)
	s.logger.Info("user registered", "username", username)
	return true, nil
}

// VerifyCredentials reports whether password matches the stored credential.
func (s *UserStore) VerifyCredentials(username, password string) bool {
	if password == "" {
		return false
	}
	u, ok := s.users[username]
	if !ok {
		return false
	}
	return s.hasher.Verify(password, u.Hash(), u.Salt())
}

// AddScheduleEntry appends entry to the user's schedule.
func (s *UserStore) AddScheduleEntry(ctx context.Context, username string, entry sharedDomain.ScheduleEntry) error {
	u, ok := s.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}

	before := u.Clone()
	if err := u.AddScheduleEntry(entry); err != nil {
		return err
	}
	if err := s.persist(ctx); err != nil {
		s.users[username] = before
		return err
	}

	s.logger.Debug("schedule entry added", "username", username, "entry", entry.Name)
	return nil
}

// RemoveScheduleEntry removes the entry named meetingName from the user's
// schedule. Names must match exactly.
func (s *UserStore) RemoveScheduleEntry(ctx context.Context, username, meetingName string) error {
	if username == "" || meetingName == "" {
		return domain.ErrInvalidScheduleEntry
	}
	u, ok := s.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}

	before := u.Clone()
	if !u.RemoveScheduleEntry(meetingName) {
		return domain.ErrScheduleEntryNotFound
	}
	if err := s.persist(ctx); err != nil {
		s.users[username] = before
		return err
	}

	s.logger.Debug("schedule entry removed", "username", username, "entry", meetingName)
	return nil
}

// ReleaseMeeting removes the entry named meetingName from every listed user
// with one write. Unknown users and users without the entry are skipped.
func (s *UserStore) ReleaseMeeting(ctx context.Context, meetingName string, usernames []string) error {
	before := make(map[string]*domain.User)
	for _, username := range usernames {
		u, ok := s.users[username]
		if !ok {
			continue
		}
		if _, seen := before[username]; !seen {
			before[username] = u.Clone()
		}
		u.RemoveScheduleEntry(meetingName)
	}
	if len(before) == 0 {
		return nil
	}

	if err := s.persist(ctx); err != nil {
		for username, u := range before {
			s.users[username] = u
		}
		return err
	}

	s.logger.Debug("meeting released from schedules", "meeting", meetingName, "users", len(before))
	return nil
}

// Checkpoint captures the listed users. The returned function puts them back
// in memory unconditionally and then rewrites the collection, so callers can
// undo a change the user side already committed.
func (s *UserStore) Checkpoint(usernames ...string) func(ctx context.Context) error {
	saved := make(map[string]*domain.User, len(usernames))
	for _, username := range usernames {
		if u, ok := s.users[username]; ok {
			saved[username] = u.Clone()
		}
	}
	return func(ctx context.Context) error {
		for username, u := range saved {
			s.users[username] = u.Clone()
		}
		return s.persist(ctx)
	}
}

// IsBusy reports whether the user has an entry overlapping interval.
// Unknown users are always busy.
func (s *UserStore) IsBusy(username string, interval sharedDomain.Interval) bool {
	u, ok := s.users[username]
	if !ok {
		return true
	}
	return u.IsBusy(interval)
}

// Exists reports whether username is registered.
func (s *UserStore) Exists(username string) bool {
	_, ok := s.users[username]
	return ok
}

// Get returns a copy of the user.
func (s *UserStore) Get(username string) (*domain.User, bool) {
	u, ok := s.users[username]
	if !ok {
		return nil, false
	}
	return u.Clone(), true
}

// Users returns copies of every user in registration order.
func (s *UserStore) Users() []*domain.User {
	users := make([]*domain.User, 0, len(s.order))
	for _, username := range s.order {
		users = append(users, s.users[username].Clone())
	}
	return users
}

// PullDomainEvents returns the events recorded by successful mutations and
// clears them.
func (s *UserStore) PullDomainEvents() []sharedDomain.DomainEvent {
	events := s.pending
	s.pending = nil
	return events
}

func (s *UserStore) persist(ctx context.Context) error {
	users := make([]*domain.User, 0, len(s.order))
	for _, username := range s.order {
		users = append(users, s.users[username])
	}
	timer := observability.StartTimer("save users").WithLogger(s.logger)
	err := s.repo.SaveAll(ctx, users)
	timer.Stop(ctx, err)
	if err != nil {
		s.logger.Error("failed to persist users", "error", err)
		return fmt.Errorf("failed to persist users: %w", err)
	}
	return nil
}
