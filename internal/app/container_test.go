package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	identityCommands "github.com/felixgeelhaar/meetdesk/internal/identity/application/commands"
	meetingCommands "github.com/felixgeelhaar/meetdesk/internal/meetings/application/commands"
	meetingQueries "github.com/felixgeelhaar/meetdesk/internal/meetings/application/queries"
	"github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	"github.com/felixgeelhaar/meetdesk/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	return &config.Config{
		AppEnv:        "test",
		LogLevel:      "debug",
		LogFormat:     "text",
		StoreDriver:   driver,
		DataDir:       t.TempDir(),
		UsersFile:     "users.json",
		MeetingsFile:  "meetings.json",
		KDFIterations: 1000,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// exercise registers two users, creates a meeting and books the second user.
func exercise(t *testing.T, c *Container) {
	t.Helper()
	ctx := context.Background()

	for _, name := range []string{"alice", "bob"} {
		require.NoError(t, c.RegisterUserHandler.Handle(ctx, identityCommands.RegisterUserCommand{Username: name, Password: "pass1"}))
	}
	require.NoError(t, c.LoginUserHandler.Handle(ctx, identityCommands.LoginUserCommand{Username: "alice", Password: "pass1"}))
	current, ok := c.Session.Current()
	require.True(t, ok)

	from := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	_, err := c.CreateMeetingHandler.Handle(ctx, meetingCommands.CreateMeetingCommand{
		Organizer:   current,
		Name:        "standup",
		Description: "daily sync",
		Category:    domain.CategoryHub,
		Kind:        domain.KindLive,
		From:        from,
		To:          from.Add(time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, c.AttendanceHandler.Add(ctx, meetingCommands.AddAttendeeCommand{
		MeetingName: "standup",
		Attendee:    "bob",
		From:        from,
		To:          from.Add(30 * time.Minute),
	}))
}

func TestContainer_ReloadsState(t *testing.T) {
	for _, driver := range []string{"json", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			cfg := testConfig(t, driver)
			ctx := context.Background()

			c, err := NewContainer(ctx, cfg, testLogger())
			require.NoError(t, err)
			exercise(t, c)
			c.Close()

			reopened, err := NewContainer(ctx, cfg, testLogger())
			require.NoError(t, err)
			defer reopened.Close()

			assert.True(t, reopened.Users.Exists("alice"))
			assert.True(t, reopened.Users.VerifyCredentials("bob", "pass1"))

			meeting, err := reopened.GetMeetingHandler.Handle(ctx, meetingQueries.GetMeetingQuery{Name: "standup"})
			require.NoError(t, err)
			assert.Equal(t, "alice", meeting.Organizer)
			require.Len(t, meeting.Attendees, 2)
			assert.Equal(t, "bob", meeting.Attendees[1].Username)

			bob, ok := reopened.Users.Get("bob")
			require.True(t, ok)
			require.Len(t, bob.Schedule(), 1)
			assert.Equal(t, "standup", bob.Schedule()[0].Name)

			// the session is not persisted
			_, loggedIn := reopened.Session.Current()
			assert.False(t, loggedIn)
		})
	}
}

func TestContainer_JSONFiles(t *testing.T) {
	cfg := testConfig(t, "json")
	c, err := NewContainer(context.Background(), cfg, testLogger())
	require.NoError(t, err)
	defer c.Close()

	exercise(t, c)

	assert.FileExists(t, filepath.Join(cfg.DataDir, "users.json"))
	assert.FileExists(t, filepath.Join(cfg.DataDir, "meetings.json"))
	assert.NoFileExists(t, filepath.Join(cfg.DataDir, "meetdesk.db"))
}

func TestContainer_SQLitePath(t *testing.T) {
	cfg := testConfig(t, "sqlite")
	cfg.SQLitePath = filepath.Join(t.TempDir(), "nested", "desk.db")

	c, err := NewContainer(context.Background(), cfg, testLogger())
	require.NoError(t, err)
	defer c.Close()

	assert.FileExists(t, cfg.SQLitePath)
	assert.NoFileExists(t, filepath.Join(cfg.DataDir, "users.json"))
}

func TestContainer_CorruptDataFails(t *testing.T) {
	cfg := testConfig(t, "json")
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, "meetings.json"), []byte("{broken"), 0o600))

	c, err := NewContainer(context.Background(), cfg, testLogger())
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestContainer_UnknownDriver(t *testing.T) {
	cfg := testConfig(t, "postgres")

	_, err := NewContainer(context.Background(), cfg, testLogger())
	assert.Error(t, err)
}

func TestContainer_ListMeetings(t *testing.T) {
	c, err := NewContainer(context.Background(), testConfig(t, "json"), testLogger())
	require.NoError(t, err)
	defer c.Close()
	exercise(t, c)

	got, err := c.ListMeetingsHandler.Handle(context.Background(), meetingQueries.ListMeetingsQuery{MinAttendees: 2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "standup", got[0].Name)
}
