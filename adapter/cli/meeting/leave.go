package meeting

import (
	"github.com/felixgeelhaar/meetdesk/adapter/cli"
	meetingCommands "github.com/felixgeelhaar/meetdesk/internal/meetings/application/commands"
	"github.com/spf13/cobra"
)

func newLeaveCmd() *cobra.Command {
	var attendee string

	cmd := &cobra.Command{
		Use:   "leave <meeting>",
		Short: "Stop attending a meeting",
		Long: `Remove an attendee from a meeting. The organizer cannot leave their
own meeting; remove it instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, actor, err := requireApp()
			if err != nil {
				return err
			}
			if attendee == "" {
				attendee = actor
			}

			err = app.AttendanceHandler.Remove(cmd.Context(), meetingCommands.RemoveAttendeeCommand{
				Actor:       actor,
				MeetingName: args[0],
				Attendee:    attendee,
			})
			if err != nil {
				return err
			}

			cli.Success(cmd.OutOrStdout(), "%s left %s", attendee, args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&attendee, "attendee", "a", "", "user to remove (default: current user)")
	return cmd
}
