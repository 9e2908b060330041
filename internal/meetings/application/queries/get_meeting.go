package queries

import (
	"context"

	"github.com/felixgeelhaar/meetdesk/internal/meetings/application"
	"github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	sharedApplication "github.com/felixgeelhaar/meetdesk/internal/shared/application"
)

// GetMeetingQuery looks up a single meeting by name.
type GetMeetingQuery struct {
	Name string
}

// GetMeetingHandler handles the GetMeetingQuery.
type GetMeetingHandler struct {
	store *application.MeetingStore
	uow   sharedApplication.UnitOfWork
}

// NewGetMeetingHandler creates a new GetMeetingHandler.
func NewGetMeetingHandler(store *application.MeetingStore, uow sharedApplication.UnitOfWork) *GetMeetingHandler {
	return &GetMeetingHandler{store: store, uow: uow}
}

// Handle executes the GetMeetingQuery.
func (h *GetMeetingHandler) Handle(ctx context.Context, query GetMeetingQuery) (*MeetingDTO, error) {
	return sharedApplication.InUnitOfWork(ctx, h.uow, func(context.Context) (*MeetingDTO, error) {
		m, ok := h.store.Get(query.Name)
		if !ok {
			return nil, domain.ErrMeetingNotFound
		}
		dto := toDTO(m)
		return &dto, nil
	})
}
