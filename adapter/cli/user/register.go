package user

import (
	"errors"

	"github.com/felixgeelhaar/meetdesk/adapter/cli"
	identityCommands "github.com/felixgeelhaar/meetdesk/internal/identity/application/commands"
	"github.com/felixgeelhaar/meetdesk/internal/identity/domain"
	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Register a new user",
		Long: `Register a new user.

Usernames are letters only, at most 30 characters. Passwords need at least
3 characters including a letter and a digit.

Examples:
  meetdesk user register alice s3cret`,
		Args: cobra.ExactArgs(2),
		Annotations: map[string]string{cli.SkipLoginAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := cli.GetApp()
			if app == nil || app.RegisterUserHandler == nil {
				return cli.ErrNoApp
			}

			req := cli.RegisterRequest{Username: args[0], Password: args[1]}
			if err := cli.ValidateRegister(req); err != nil {
				return err
			}

			err := app.RegisterUserHandler.Handle(cmd.Context(), identityCommands.RegisterUserCommand{
				Username: req.Username,
				Password: req.Password,
			})
			if errors.Is(err, domain.ErrUsernameTaken) {
				return errors.New("user with that name already exists")
			}
			if err != nil {
				return err
			}

			cli.Success(cmd.OutOrStdout(), "Registered %s", req.Username)
			return nil
		},
	}
}
