package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	identityCommands "github.com/felixgeelhaar/meetdesk/internal/identity/application/commands"
	"github.com/felixgeelhaar/meetdesk/pkg/observability"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	logger   *slog.Logger
	defaults Credentials
)

// SkipLoginAnnotation marks commands that never open a session.
const SkipLoginAnnotation = "meetdesk/skip-login"

// Credentials identify the user a command runs as.
type Credentials struct {
	Username string
	Password string
}

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCmd()

// NewRootCmd builds the meetdesk command tree with the given command groups.
func NewRootCmd(groups ...*cobra.Command) *cobra.Command {
	var creds Credentials

	cmd := &cobra.Command{
		Use:   "meetdesk",
		Short: "meetdesk - meetings and schedules for a small team",
		Long: `meetdesk keeps track of users, the meetings they organise and who
attends them, refusing any booking that clashes with an attendee's schedule.

Commands that act on behalf of a user take --user and --password, or read
MEETDESK_USER and MEETDESK_PASSWORD.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger == nil {
				logger = slog.Default()
			}
			info := commandContext{
				correlationID: uuid.New(),
				startedAt:     time.Now(),
			}
			ctx := context.WithValue(cmd.Context(), commandContextKey{}, info)
			ctx = observability.WithCorrelationID(ctx, info.correlationID.String())
			cmd.SetContext(ctx)

			logger.DebugContext(ctx, "command start", "command", cmd.CommandPath())
			if skipsLogin(cmd) {
				return nil
			}
			return login(cmd, creds)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger == nil {
				logger = slog.Default()
			}
			info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
			if !ok {
				return
			}
			logger.DebugContext(cmd.Context(), "command end",
				"command", cmd.CommandPath(),
				observability.DurationKey, time.Since(info.startedAt).Milliseconds(),
			)
		},
	}

	cmd.PersistentFlags().StringVarP(&creds.Username, "user", "u", "", "act as this user")
	cmd.PersistentFlags().StringVarP(&creds.Password, "password", "p", "", "password of --user")
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(groups...)
	return cmd
}

// login opens the session for the flagged user, falling back to the
// configured defaults.
func login(cmd *cobra.Command, creds Credentials) error {
	if creds.Username == "" {
		creds = defaults
	}
	if creds.Username == "" {
		return nil
	}

	a := GetApp()
	if a == nil || a.LoginUserHandler == nil {
		return ErrNoApp
	}

	err := a.LoginUserHandler.Handle(cmd.Context(), identityCommands.LoginUserCommand{
		Username: creds.Username,
		Password: creds.Password,
	})
	if err != nil {
		return fmt.Errorf("login as %s: %w", creds.Username, err)
	}
	cmd.SetContext(observability.WithUser(cmd.Context(), creds.Username))
	return nil
}

func skipsLogin(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[SkipLoginAnnotation]; ok {
			return true
		}
	}
	return false
}

// Execute runs the root command and reports a failure on stderr. It
// returns the process exit code.
func Execute(ctx context.Context) int {
	return Run(ctx, rootCmd, rootCmd.ErrOrStderr())
}

// Run executes cmd, printing any error to errOut.
func Run(ctx context.Context, cmd *cobra.Command, errOut io.Writer) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}
	Failure(errOut, "%v", err)
	return 1
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

// SetDefaultCredentials sets the user commands run as when --user is not given.
func SetDefaultCredentials(c Credentials) {
	defaults = c
}
