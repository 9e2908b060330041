package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/meetdesk/adapter/cli"
	"github.com/felixgeelhaar/meetdesk/adapter/cli/meeting"
	"github.com/felixgeelhaar/meetdesk/adapter/cli/user"
	"github.com/felixgeelhaar/meetdesk/internal/app"
	"github.com/felixgeelhaar/meetdesk/pkg/config"
	"github.com/felixgeelhaar/meetdesk/pkg/observability"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := observability.NewLogger(observability.LogConfigFrom(cfg))
	cli.SetLogger(logger)

	// Cancel on shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Unreadable data files stop the program before any command runs
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		return 1
	}
	defer container.Close()

	cli.SetApp(cli.NewApp(
		container.Session,
		container.RegisterUserHandler,
		container.LoginUserHandler,
		container.LogoutUserHandler,
		container.CreateMeetingHandler,
		container.RemoveMeetingHandler,
		container.AttendanceHandler,
		container.ListMeetingsHandler,
		container.GetMeetingHandler,
	))
	cli.SetDefaultCredentials(cli.Credentials{Username: cfg.User, Password: cfg.Password})

	// Register commands
	cli.AddCommand(user.Cmd)
	cli.AddCommand(meeting.Cmd)

	return cli.Execute(ctx)
}
