package domain

import (
	"strings"

	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
)

var (
	ErrUserNotFound          = sharedDomain.NewError(sharedDomain.ErrNotFound, "user doesn't exist")
	ErrUsernameTaken         = sharedDomain.NewError(sharedDomain.ErrConflict, "username is already taken")
	ErrEmptyCredentials      = sharedDomain.NewError(sharedDomain.ErrValidation, "username and password are required")
	ErrInvalidCredentials    = sharedDomain.NewError(sharedDomain.ErrUnauthorized, "invalid username or password")
	ErrUserBusy              = sharedDomain.NewError(sharedDomain.ErrConflict, "user is busy")
	ErrScheduleEntryNotFound = sharedDomain.NewError(sharedDomain.ErrNotFound, "schedule entry not found")
	ErrInvalidScheduleEntry  = sharedDomain.NewError(sharedDomain.ErrValidation, "invalid schedule entry")
)

// User is a registered account and its personal schedule.
type User struct {
	sharedDomain.BaseAggregateRoot
	username string
	hash     string
	salt     string
	schedule []sharedDomain.ScheduleEntry
}

// NewUser creates a freshly registered user from an already derived credential.
func NewUser(username, hash, salt string) (*User, error) {
	if strings.TrimSpace(username) == "" || hash == "" || salt == "" {
		return nil, ErrEmptyCredentials
	}

	u := &User{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(AggregateType, username),
		username:          username,
		hash:              hash,
		salt:              salt,
	}
	u.AddDomainEvent(NewUserRegistered(u))
	return u, nil
}

// RehydrateUser rebuilds a user from persistence.
func RehydrateUser(username, hash, salt string, schedule []sharedDomain.ScheduleEntry) *User {
	return &User{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(AggregateType, username),
		username:          username,
		hash:              hash,
		salt:              salt,
		schedule:          append([]sharedDomain.ScheduleEntry(nil), schedule...),
	}
}

// Getters
func (u *User) Username() string { return u.username }
func (u *User) Hash() string     { return u.hash }
func (u *User) Salt() string     { return u.salt }

// Schedule returns a copy of the user's schedule in insertion order.
func (u *User) Schedule() []sharedDomain.ScheduleEntry {
	return append([]sharedDomain.ScheduleEntry(nil), u.schedule...)
}

// IsBusy reports whether any schedule entry overlaps interval.
func (u *User) IsBusy(interval sharedDomain.Interval) bool {
	return sharedDomain.BusyWith(u.schedule, interval)
}

// HasScheduleEntry reports whether an entry with exactly this name exists.
func (u *User) HasScheduleEntry(name string) bool {
	_, ok := u.ScheduleEntry(name)
	return ok
}

// ScheduleEntry returns the first entry with exactly this name.
func (u *User) ScheduleEntry(name string) (sharedDomain.ScheduleEntry, bool) {
	for _, entry := range u.schedule {
		if entry.Name == name {
			return entry, true
		}
	}
	return sharedDomain.ScheduleEntry{}, false
}

// AddScheduleEntry appends entry unless it is malformed or overlaps an
// existing entry. Entry names are not checked for uniqueness.
func (u *User) AddScheduleEntry(entry sharedDomain.ScheduleEntry) error {
	if entry.Name == "" || !entry.IsValid() {
		return ErrInvalidScheduleEntry
	}
	if u.IsBusy(entry.Interval) {
		return ErrUserBusy
	}
	u.schedule = append(u.schedule, entry)
	return nil
}

// RemoveScheduleEntry removes the first entry named name.
func (u *User) RemoveScheduleEntry(name string) bool {
	for i, entry := range u.schedule {
		if entry.Name == name {
			u.schedule = append(u.schedule[:i:i], u.schedule[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns an independent copy without pending domain events.
func (u *User) Clone() *User {
	return RehydrateUser(u.username, u.hash, u.salt, u.schedule)
}
