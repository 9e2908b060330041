package meeting

import (
	"github.com/felixgeelhaar/meetdesk/adapter/cli"
	meetingCommands "github.com/felixgeelhaar/meetdesk/internal/meetings/application/commands"
	"github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	"github.com/spf13/cobra"
)

type createOptions struct {
	description string
	category    string
	kind        string
	from        string
	to          string
}

func newCreateCmd() *cobra.Command {
	var opts createOptions

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a meeting you are responsible for",
		Long: `Create a meeting with the current user as organizer. The organizer
attends for the whole meeting, so their schedule must be free.

Examples:
  meetdesk meeting create standup --description "daily sync" \
    --category Hub --kind Live --from "2024-01-15 09:00" --to "2024-01-15 09:15"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, organizer, err := requireApp()
			if err != nil {
				return err
			}

			category, err := domain.ParseCategory(opts.category)
			if err != nil {
				return explain(err)
			}
			kind, err := domain.ParseKind(opts.kind)
			if err != nil {
				return explain(err)
			}
			from, to, err := parseRange(opts.from, opts.to)
			if err != nil {
				return err
			}

			result, err := app.CreateMeetingHandler.Handle(cmd.Context(), meetingCommands.CreateMeetingCommand{
				Organizer:   organizer,
				Name:        args[0],
				Description: opts.description,
				Category:    category,
				Kind:        kind,
				From:        from,
				To:          to,
			})
			if err != nil {
				return err
			}

			cli.Success(cmd.OutOrStdout(), "Created meeting %s", result.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "what the meeting is about")
	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "category ("+categoryNames()+")")
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", string(domain.KindLive), "meeting type ("+kindNames()+")")
	cmd.Flags().StringVar(&opts.from, "from", "", "start (yyyy-MM-dd HH:mm)")
	cmd.Flags().StringVar(&opts.to, "to", "", "end (yyyy-MM-dd HH:mm)")
	return cmd
}
