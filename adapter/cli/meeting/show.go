package meeting

import (
	"github.com/felixgeelhaar/meetdesk/adapter/cli"
	meetingQueries "github.com/felixgeelhaar/meetdesk/internal/meetings/application/queries"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a meeting and its attendees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := cli.GetApp()
			if app == nil || app.GetMeetingHandler == nil {
				return cli.ErrNoApp
			}

			meeting, err := app.GetMeetingHandler.Handle(cmd.Context(), meetingQueries.GetMeetingQuery{Name: args[0]})
			if err != nil {
				return err
			}
			cli.RenderMeeting(cmd.OutOrStdout(), *meeting)
			return nil
		},
	}
}
