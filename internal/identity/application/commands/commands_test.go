package commands_test

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/meetdesk/internal/identity/application"
	"github.com/felixgeelhaar/meetdesk/internal/identity/application/commands"
	"github.com/felixgeelhaar/meetdesk/internal/identity/domain"
	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
	"github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/crypto"
	"github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type nopUserRepo struct{}

func (nopUserRepo) LoadAll(context.Context) ([]*domain.User, error) { return nil, nil }
func (nopUserRepo) SaveAll(context.Context, []*domain.User) error { return nil }

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishDomainEvent(ctx context.Context, event sharedDomain.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newStore(t *testing.T) *application.UserStore {
	t.Helper()
	store, err := application.NewUserStore(context.Background(), nopUserRepo{}, crypto.NewPBKDF2Hasher(1000), nil)
	require.NoError(t, err)
	return store
}

func TestRegisterUserHandler(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	publisher := new(mockPublisher)
	publisher.On("PublishDomainEvent", mock.Anything, mock.MatchedBy(func(e sharedDomain.DomainEvent) bool {
		registered, ok := e.(*domain.UserRegistered)
		return ok && registered.Username == "alice" && registered.Metadata().Actor == "alice"
	})).Return(nil).Once()

	handler := commands.NewRegisterUserHandler(store, persistence.NewSerialUnitOfWork(), publisher, nil)

	require.NoError(t, handler.Handle(ctx, commands.RegisterUserCommand{Username: "alice", Password: "secret1"}))
	assert.True(t, store.Exists("alice"))

	err := handler.Handle(ctx, commands.RegisterUserCommand{Username: "alice", Password: "secret2"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	err = handler.Handle(ctx, commands.RegisterUserCommand{Username: "bob"})
	assert.ErrorIs(t, err, domain.ErrEmptyCredentials)

	publisher.AssertExpectations(t)
}

func TestLoginUserHandler(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	_, err := store.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	uow := persistence.NewSerialUnitOfWork()
	session := application.NewSession(store, nil)
	login := commands.NewLoginUserHandler(session, uow)

	err = login.Handle(ctx, commands.LoginUserCommand{Username: "alice", Password: "nope1"})
	assert.ErrorIs(t, err, sharedDomain.ErrUnauthorized)

	require.NoError(t, login.Handle(ctx, commands.LoginUserCommand{Username: "alice", Password: "secret1"}))
	current, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, "alice", current)

	require.NoError(t, commands.NewLogoutUserHandler(session).Handle(ctx))
	_, ok = session.Current()
	assert.False(t, ok)
}
