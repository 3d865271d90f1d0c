package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/pterodeploy/pteroctl/internal/actions/account"
	"github.com/pterodeploy/pteroctl/internal/actions/configure"
	"github.com/pterodeploy/pteroctl/internal/actions/deploy"
	"github.com/pterodeploy/pteroctl/internal/actions/selfupdate"
	"github.com/pterodeploy/pteroctl/internal/actions/server/command"
	"github.com/pterodeploy/pteroctl/internal/actions/server/console"
	"github.com/pterodeploy/pteroctl/internal/actions/server/power"
	"github.com/pterodeploy/pteroctl/internal/actions/server/reinstall"
	"github.com/pterodeploy/pteroctl/internal/actions/server/status"
	"github.com/pterodeploy/pteroctl/internal/actions/servers"
	"github.com/pterodeploy/pteroctl/internal/config"
	contextInternal "github.com/pterodeploy/pteroctl/internal/context"
	"github.com/pterodeploy/pteroctl/internal/pkg/pteroctl"
	"github.com/pterodeploy/pteroctl/pkg/pterodactyl"
)

// Exit codes per error class, so a pipeline can tell a bad credential
// from a flaky network without parsing output.
const (
	exitCodeFailure    = 1
	exitCodeValidation = 2
	exitCodeAuth       = 3
	exitCodeNotFound   = 4
	exitCodeNetwork    = 5
	exitCodeRemote     = 6
)

//nolint:funlen
func Run(args []string) {
	logPath := setupLogs()

	app := &cli.App{
		Name:    "pteroctl",
		Usage:   "Pterodactyl deploy control",
		Version: pteroctl.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Usage:   "panel base URL, no trailing slash",
				EnvVars: []string{"PTERODACTYL_HOST"},
			},
			&cli.StringFlag{
				Name:    "server-id",
				Aliases: []string{"s"},
				Usage:   "server identifier on the panel",
				EnvVars: []string{"PTERODACTYL_SERVER_ID"},
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "client API key",
				EnvVars: []string{"PTERODACTYL_API_KEY"},
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "config profile to use",
				EnvVars: []string{"PTEROCTL_PROFILE"},
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config file",
			},
		},
		Before: func(cliCtx *cli.Context) error {
			configPath := cliCtx.String("config")
			if configPath == "" {
				var err error
				configPath, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}

			ctx, err := contextInternal.SetConfigContext(cliCtx.Context, configPath)
			if err != nil {
				return err
			}
			cliCtx.Context = ctx

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:        "deploy",
				Aliases:     []string{"d"},
				Description: "Restart the server after a push, optionally waiting for it to come back",
				Usage:       "Trigger a deploy restart",
				Action:      deploy.Handle,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "wait",
						Usage: "wait until the server reports running",
					},
					&cli.DurationFlag{
						Name:  "wait-timeout",
						Value: 2 * time.Minute,
					},
					&cli.BoolFlag{
						Name:  "last",
						Usage: "show the last recorded deploy",
					},
				},
			},
			{
				Name:        "server",
				Description: "Actions on one server",
				Usage:       "Actions on one server",
				Subcommands: []*cli.Command{
					{
						Name:    "restart",
						Aliases: []string{"r"},
						Usage:   "Restart server",
						Action:  power.Handle(pterodactyl.SignalRestart),
					},
					{
						Name:   "start",
						Usage:  "Start server",
						Action: power.Handle(pterodactyl.SignalStart),
					},
					{
						Name:   "stop",
						Usage:  "Stop server",
						Action: power.Handle(pterodactyl.SignalStop),
					},
					{
						Name:   "kill",
						Usage:  "Kill server process",
						Action: power.Handle(pterodactyl.SignalKill),
					},
					{
						Name:    "status",
						Aliases: []string{"st"},
						Usage:   "Show server state and resource usage",
						Action:  status.Handle,
					},
					{
						Name:   "reinstall",
						Usage:  "Reinstall server from its egg",
						Action: reinstall.Handle,
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:    "yes",
								Aliases: []string{"y"},
								Usage:   "do not ask for confirmation",
							},
						},
					},
					{
						Name:   "command",
						Usage:  "Send a console command",
						Action: command.Handle,
					},
					{
						Name:    "console",
						Aliases: []string{"c"},
						Usage:   "Stream the live console",
						Action:  console.Handle,
					},
				},
			},
			{
				Name:    "servers",
				Aliases: []string{"ls"},
				Usage:   "List servers of the account",
				Action:  servers.Handle,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "suspended",
						Usage: "show only suspended servers",
					},
				},
			},
			{
				Name:    "account",
				Aliases: []string{"whoami"},
				Usage:   "Show the account the API key belongs to",
				Action:  account.Handle,
			},
			{
				Name:  "config",
				Usage: "Configuration actions",
				Subcommands: []*cli.Command{
					{
						Name:   "init",
						Usage:  "Interactively save a credential profile",
						Action: configure.Handle,
					},
				},
			},
			{
				Name:   "self-update",
				Usage:  "Update pteroctl to the latest release",
				Action: selfupdate.Handle,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name: "force",
					},
				},
			},
		},
	}

	err := app.Run(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if logPath != "" {
			fmt.Println("See details in log file:", logPath)
		}
		log.Println(err)

		os.Exit(exitCode(err))
	}
}

// setupLogs sends the log package to a timestamped file under the state
// directory. Returns empty when the file could not be set up; logging
// then stays on stderr.
func setupLogs() string {
	logsDir, err := pteroctl.LogsDirectory()
	if err != nil {
		log.Println(errors.WithMessage(err, "failed to get logs directory"))

		return ""
	}

	logname := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02_15-04-05"))
	logPath := filepath.Join(logsDir, logname)

	logFile, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		log.Println(errors.WithMessage(err, "failed to open log file"))

		return ""
	}

	log.SetOutput(logFile)

	return logPath
}

func exitCode(err error) int {
	var validationErr *pterodactyl.ValidationError
	var authErr *pterodactyl.AuthError
	var notFoundErr *pterodactyl.NotFoundError
	var networkErr *pterodactyl.NetworkError
	var remoteErr *pterodactyl.RemoteError

	switch {
	case errors.As(err, &validationErr):
		return exitCodeValidation
	case errors.As(err, &authErr):
		return exitCodeAuth
	case errors.As(err, &notFoundErr):
		return exitCodeNotFound
	case errors.As(err, &networkErr):
		return exitCodeNetwork
	case errors.As(err, &remoteErr):
		return exitCodeRemote
	default:
		return exitCodeFailure
	}
}
