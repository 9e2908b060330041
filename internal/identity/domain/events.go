package domain

import (
	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
)

const (
	AggregateType = "User"

	RoutingKeyUserRegistered = "identity.user.registered"
)

// UserRegistered is emitted when a new user registers.
type UserRegistered struct {
	sharedDomain.BaseEvent
	Username string `json:"username"`
}

// NewUserRegistered creates a UserRegistered event.
func NewUserRegistered(u *User) *UserRegistered {
	return &UserRegistered{
		BaseEvent: sharedDomain.NewBaseEvent(u.ID(), AggregateType, RoutingKeyUserRegistered),
		Username:  u.Username(),
	}
}
