package meeting

import (
	"errors"

	"github.com/felixgeelhaar/meetdesk/adapter/cli"
	meetingCommands "github.com/felixgeelhaar/meetdesk/internal/meetings/application/commands"
	"github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a meeting you organise",
		Long: `Remove a meeting. Only its organizer may remove it; every attendee's
schedule is freed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, caller, err := requireApp()
			if err != nil {
				return err
			}

			err = app.RemoveMeetingHandler.Handle(cmd.Context(), meetingCommands.RemoveMeetingCommand{
				Caller: caller,
				Name:   args[0],
			})
			if errors.Is(err, domain.ErrNotOrganizer) {
				return errors.New("only the responsible person can remove the meeting")
			}
			if err != nil {
				return err
			}

			cli.Success(cmd.OutOrStdout(), "Removed meeting %s", args[0])
			return nil
		},
	}
}
