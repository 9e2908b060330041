package domain

import "context"

// Repository persists the whole meeting collection at once.
type Repository interface {
	// LoadAll returns every stored meeting in stored order.
	LoadAll(ctx context.Context) ([]*Meeting, error)
	// SaveAll replaces the stored collection with meetings.
	SaveAll(ctx context.Context, meetings []*Meeting) error
}
