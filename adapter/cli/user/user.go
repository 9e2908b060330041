package user

import "github.com/spf13/cobra"

// Cmd is the user command group.
var Cmd = NewCmd()

// NewCmd builds the user command group.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
		Long:  `Register new users and check credentials.`,
	}
	cmd.AddCommand(newRegisterCmd())
	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newWhoAmICmd())
	cmd.AddCommand(newLogoutCmd())
	return cmd
}
