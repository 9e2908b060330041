package meeting

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/meetdesk/adapter/cli"
	"github.com/felixgeelhaar/meetdesk/internal/meetings/domain"
	"github.com/spf13/cobra"
)

// Cmd is the meeting command group.
var Cmd = NewCmd()

// NewCmd builds the meeting command group.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meeting",
		Short: "Manage meetings",
		Long: `Create and remove meetings, join and leave them, and browse the
meeting list. Dates use the yyyy-MM-dd HH:mm format in local time.`,
	}
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newRemoveCmd())
	cmd.AddCommand(newAttendCmd())
	cmd.AddCommand(newLeaveCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())
	return cmd
}

// requireApp returns the wired application and the logged in user.
func requireApp() (*cli.App, string, error) {
	app := cli.GetApp()
	if app == nil {
		return nil, "", cli.ErrNoApp
	}
	username, err := app.CurrentUser()
	if err != nil {
		return nil, "", err
	}
	return app, username, nil
}

// parseRange reads the --from and --to flags; both are required.
func parseRange(from, to string) (time.Time, time.Time, error) {
	if from == "" || to == "" {
		return time.Time{}, time.Time{}, errors.New("--from and --to are required")
	}
	start, err := cli.ParseDateTime(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := cli.ParseDateTime(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func categoryNames() string {
	names := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func kindNames() string {
	names := make([]string, 0, len(domain.Kinds))
	for _, k := range domain.Kinds {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

// explain turns domain failures into messages for the console.
func explain(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCategory):
		return fmt.Errorf("%w (one of %s)", err, categoryNames())
	case errors.Is(err, domain.ErrInvalidKind):
		return fmt.Errorf("%w (one of %s)", err, kindNames())
	}
	return err
}
