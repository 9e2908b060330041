package domain

import "github.com/google/uuid"

// AggregateRoot is a domain entity that is the root of an aggregate.
type AggregateRoot interface {
	ID() uuid.UUID
	DomainEvents() []DomainEvent
	ClearDomainEvents()
	AddDomainEvent(event DomainEvent)
}

// BaseAggregateRoot provides common aggregate functionality.
type BaseAggregateRoot struct {
	id           uuid.UUID
	domainEvents []DomainEvent
}

// NewBaseAggregateRoot creates an aggregate root whose identity is derived
// from its kind and natural key.
func NewBaseAggregateRoot(kind, key string) BaseAggregateRoot {
	return BaseAggregateRoot{
		id:           NameID(kind, key),
		domainEvents: make([]DomainEvent, 0),
	}
}

// NameID returns the stable identifier for an aggregate with a natural key.
// The same kind and key always map to the same ID.
func NameID(kind, key string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+key))
}

// ID returns the aggregate identity.
func (a *BaseAggregateRoot) ID() uuid.UUID {
	return a.id
}

// DomainEvents returns all uncommitted domain events.
func (a *BaseAggregateRoot) DomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents removes all uncommitted domain events.
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = make([]DomainEvent, 0)
}

// AddDomainEvent adds a domain event to the aggregate.
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// PullDomainEvents returns the uncommitted events and clears them.
func (a *BaseAggregateRoot) PullDomainEvents() []DomainEvent {
	events := a.domainEvents
	a.domainEvents = make([]DomainEvent, 0)
	return events
}
