package application_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	sharedDomain "github.com/felixgeelhaar/meetdesk/internal/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var people = []string{"alice", "bob", "carol", "dave"}

// operation applies one random store call and returns its error.
type operation func(ctx context.Context, f *fixture, r *rand.Rand) error

func randomInterval(r *rand.Rand) sharedDomain.Interval {
	from := r.Intn(12)
	return hours(from, from+r.Intn(4))
}

func randomName(r *rand.Rand) string {
	return fmt.Sprintf("m%d", r.Intn(6))
}

var operations = []operation{
	func(ctx context.Context, f *fixture, r *rand.Rand) error {
		_, err := f.meetings.AddMeeting(ctx, spec(randomName(r), people[r.Intn(len(people))], randomInterval(r)))
		return err
	},
	func(ctx context.Context, f *fixture, r *rand.Rand) error {
		return f.meetings.RemoveMeeting(ctx, people[r.Intn(len(people))], randomName(r))
	},
	func(ctx context.Context, f *fixture, r *rand.Rand) error {
		return f.meetings.AddAttendee(ctx, randomName(r), people[r.Intn(len(people))], randomInterval(r))
	},
	func(ctx context.Context, f *fixture, r *rand.Rand) error {
		return f.meetings.RemoveAttendee(ctx, randomName(r), people[r.Intn(len(people))])
	},
}

// runRandomOperations drives the stores with a seeded sequence of calls and
// fails the repositories now and then.
func runRandomOperations(t testing.TB, seed int64, steps int) {
	ctx := context.Background()
	f := newFixture(t, people...)
	r := rand.New(rand.NewSource(seed))

	for i := 0; i < steps; i++ {
		f.userRepo.saveErr = nil
		f.meetingRepo.saveErr = nil
		switch r.Intn(10) {
		case 0:
			f.userRepo.saveErr = errDiskFull
		case 1:
			f.meetingRepo.saveErr = errDiskFull
		}

		op := operations[r.Intn(len(operations))]
		_ = op(ctx, f, r)

		assertConsistent(t, f.users, f.meetings)
	}
}

func TestMeetingStore_RandomOperationsKeepStoresConsistent(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		t.Run(fmt.Sprintf("seed-%d", seed), func(t *testing.T) {
			runRandomOperations(t, seed, 200)
		})
	}
}

// FuzzAddAttendee checks that a rejected or failed AddAttendee leaves both
// stores exactly as they were.
func FuzzAddAttendee(f *testing.F) {
	f.Add(uint8(0), uint8(1), int8(9), int8(10), false)
	f.Add(uint8(0), uint8(0), int8(9), int8(10), false)
	f.Add(uint8(1), uint8(2), int8(10), int8(10), false)
	f.Add(uint8(1), uint8(3), int8(11), int8(9), true)
	f.Add(uint8(2), uint8(1), int8(-3), int8(30), false)

	f.Fuzz(func(t *testing.T, meetingIdx, attendeeIdx uint8, from, to int8, failWrite bool) {
		ctx := context.Background()
		fx := newFixture(t, people...)

		_, err := fx.meetings.AddMeeting(ctx, spec("standup", "alice", hours(9, 12)))
		require.NoError(t, err)
		_, err = fx.meetings.AddMeeting(ctx, spec("review", "bob", hours(10, 11)))
		require.NoError(t, err)
		fx.meetings.PullDomainEvents()

		meetingNames := []string{"standup", "review", "ghost-meeting"}
		meetingName := meetingNames[int(meetingIdx)%len(meetingNames)]
		candidates := []string{"alice", "bob", "carol", "dave", "ghost"}
		attendee := candidates[int(attendeeIdx)%len(candidates)]

		usersBefore := snapshotUsers(fx)
		meetingsBefore := snapshotMeetings(fx)

		fx.meetingRepo.saveErr = nil
		if failWrite {
			fx.meetingRepo.saveErr = errDiskFull
		}

		err = fx.meetings.AddAttendee(ctx, meetingName, attendee, hours(int(from), int(to)))
		assertConsistent(t, fx.users, fx.meetings)

		if err != nil {
			assert.Equal(t, usersBefore, snapshotUsers(fx))
			assert.Equal(t, meetingsBefore, snapshotMeetings(fx))
			assert.Empty(t, fx.meetings.PullDomainEvents())
			return
		}

		m, ok := fx.meetings.Get(meetingName)
		require.True(t, ok)
		assert.True(t, m.IsAttending(attendee))
		assert.Len(t, fx.meetings.PullDomainEvents(), 1)
	})
}

func snapshotUsers(f *fixture) map[string]string {
	out := make(map[string]string)
	for _, u := range f.users.Users() {
		out[u.Username()] = fmt.Sprint(u.Schedule())
	}
	return out
}

func snapshotMeetings(f *fixture) map[string]string {
	out := make(map[string]string)
	for _, m := range f.meetings.ListMeetings() {
		out[m.Name()] = fmt.Sprint(m.Attendees())
	}
	return out
}

func TestStandupScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice", "bob", "carol")

	// alice creates the standup
	_, err := f.meetings.AddMeeting(ctx, spec("standup", "alice", hours(9, 10)))
	require.NoError(t, err)

	// nobody can reuse the name
	_, err = f.meetings.AddMeeting(ctx, spec("standup", "bob", hours(13, 14)))
	assert.ErrorIs(t, err, domain.ErrDuplicateMeeting)

	// carol is busy with her own meeting and cannot join
	_, err = f.meetings.AddMeeting(ctx, spec("one-on-one", "carol", hours(9, 10)))
	require.NoError(t, err)
	assert.ErrorIs(t, f.meetings.AddAttendee(ctx, "standup", "carol", hours(9, 10)), domain.ErrAttendeeBusy)

	// bob joins but cannot remove alice's meeting
	require.NoError(t, f.meetings.AddAttendee(ctx, "standup", "bob", hours(9, 10)))
	assert.ErrorIs(t, f.meetings.RemoveMeeting(ctx, "bob", "standup"), domain.ErrNotOrganizer)

	require.NoError(t, f.meetings.RemoveMeeting(ctx, "alice", "standup"))
	assertConsistent(t, f.users, f.meetings)

	bob, _ := f.users.Get("bob")
	assert.Empty(t, bob.Schedule())
}
