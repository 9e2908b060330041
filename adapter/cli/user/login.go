package user

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/meetdesk/adapter/cli"
	identityCommands "github.com/felixgeelhaar/meetdesk/internal/identity/application/commands"
	"github.com/felixgeelhaar/meetdesk/internal/identity/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Check a user's credentials",
		Long: `Check that a username and password match a registered user.

Examples:
  meetdesk user login alice s3cret`,
		Args: cobra.ExactArgs(2),
		Annotations: map[string]string{cli.SkipLoginAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := cli.GetApp()
			if app == nil || app.LoginUserHandler == nil {
				return cli.ErrNoApp
			}

			err := app.LoginUserHandler.Handle(cmd.Context(), identityCommands.LoginUserCommand{
				Username: args[0],
				Password: args[1],
			})
			if errors.Is(err, domain.ErrInvalidCredentials) {
				return errors.New("wrong username or password")
			}
			if err != nil {
				return err
			}

			cli.Success(cmd.OutOrStdout(), "Logged in as %s", args[0])
			return nil
		},
	}
}

func newWhoAmICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := cli.GetApp().CurrentUser()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), username)
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := cli.GetApp()
			username, err := app.CurrentUser()
			if err != nil {
				return err
			}
			if err := app.LogoutUserHandler.Handle(cmd.Context()); err != nil {
				return err
			}
			cli.Success(cmd.OutOrStdout(), "Logged out %s", username)
			return nil
		},
	}
}
