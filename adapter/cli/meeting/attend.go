package meeting

import (
	"github.com/felixgeelhaar/meetdesk/adapter/cli"
	meetingCommands "github.com/felixgeelhaar/meetdesk/internal/meetings/application/commands"
	"github.com/spf13/cobra"
)

type attendOptions struct {
	attendee string
	from     string
	to       string
}

func newAttendCmd() *cobra.Command {
	var opts attendOptions

	cmd := &cobra.Command{
		Use:   "attend <meeting>",
		Short: "Join a meeting for part or all of its time",
		Long: `Add an attendee to a meeting. The attendance must lie within the
meeting and must not clash with the attendee's schedule. The attendee
defaults to the current user.

Examples:
  meetdesk meeting attend standup --from "2024-01-15 09:00" --to "2024-01-15 09:15"
  meetdesk meeting attend standup --attendee bob --from "2024-01-15 09:05" --to "2024-01-15 09:10"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, actor, err := requireApp()
			if err != nil {
				return err
			}
			from, to, err := parseRange(opts.from, opts.to)
			if err != nil {
				return err
			}

			attendee := opts.attendee
			if attendee == "" {
				attendee = actor
			}
			err = app.AttendanceHandler.Add(cmd.Context(), meetingCommands.AddAttendeeCommand{
				Actor:       actor,
				MeetingName: args[0],
				Attendee:    attendee,
				From:        from,
				To:          to,
			})
			if err != nil {
				return err
			}

			cli.Success(cmd.OutOrStdout(), "%s attends %s from %s to %s",
				attendee, args[0], cli.FormatDateTime(from), cli.FormatDateTime(to))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.attendee, "attendee", "a", "", "user to add (default: current user)")
	cmd.Flags().StringVar(&opts.from, "from", "", "start (yyyy-MM-dd HH:mm)")
	cmd.Flags().StringVar(&opts.to, "to", "", "end (yyyy-MM-dd HH:mm)")
	return cmd
}
