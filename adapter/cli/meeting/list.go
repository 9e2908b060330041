package meeting

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/meetdesk/adapter/cli"
	meetingQueries "github.com/felixgeelhaar/meetdesk/internal/meetings/application/queries"
	"github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	"github.com/spf13/cobra"
)

type listOptions struct {
	description  string
	organizer    string
	category     string
	kind         string
	from         string
	to           string
	minAttendees int
	maxAttendees int
}

func (o listOptions) query() (meetingQueries.ListMeetingsQuery, error) {
	q := meetingQueries.ListMeetingsQuery{
		DescriptionContains: o.description,
		OrganizerContains:   o.organizer,
		MinAttendees:        o.minAttendees,
		MaxAttendees:        o.maxAttendees,
	}
	if o.minAttendees < 0 || o.maxAttendees < 0 {
		return q, errors.New("attendee counts cannot be negative")
	}

	var err error
	if o.category != "" {
		if q.Category, err = domain.ParseCategory(o.category); err != nil {
			return q, explain(err)
		}
	}
	if o.kind != "" {
		if q.Kind, err = domain.ParseKind(o.kind); err != nil {
			return q, explain(err)
		}
	}
	if o.from != "" {
		if q.StartsFrom, err = cli.ParseDateTime(o.from); err != nil {
			return q, err
		}
	}
	if o.to != "" {
		if q.EndsBy, err = cli.ParseDateTime(o.to); err != nil {
			return q, err
		}
	}
	return q, nil
}

func newListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List meetings",
		Long: `List meetings in creation order. Filters combine; text filters match
anywhere in the field.

Examples:
  meetdesk meeting list
  meetdesk meeting list --organizer ali --category Hub
  meetdesk meeting list --from "2024-01-15 00:00" --to "2024-01-16 00:00" --min-attendees 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := cli.GetApp()
			if app == nil || app.ListMeetingsHandler == nil {
				return cli.ErrNoApp
			}

			query, err := opts.query()
			if err != nil {
				return err
			}
			meetings, err := app.ListMeetingsHandler.Handle(cmd.Context(), query)
			if err != nil {
				return err
			}

			if len(meetings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meetings found.")
				return nil
			}
			cli.RenderMeetings(cmd.OutOrStdout(), meetings)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.description, "description", "", "description contains (case-insensitive)")
	cmd.Flags().StringVar(&opts.organizer, "organizer", "", "organizer name contains (case-insensitive)")
	cmd.Flags().StringVar(&opts.category, "category", "", "category ("+categoryNames()+")")
	cmd.Flags().StringVar(&opts.kind, "kind", "", "meeting type ("+kindNames()+")")
	cmd.Flags().StringVar(&opts.from, "from", "", "starts on or after (yyyy-MM-dd HH:mm)")
	cmd.Flags().StringVar(&opts.to, "to", "", "ends on or before (yyyy-MM-dd HH:mm)")
	cmd.Flags().IntVar(&opts.minAttendees, "min-attendees", 0, "at least this many attendees")
	cmd.Flags().IntVar(&opts.maxAttendees, "max-attendees", 0, "at most this many attendees")
	return cmd
}
