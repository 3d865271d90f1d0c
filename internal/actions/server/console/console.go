package console

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/pterodeploy/pteroctl/internal/pkg/credentials"
	"github.com/pterodeploy/pteroctl/pkg/pterodactyl"
)

// Handle streams the live server console until the context is canceled
// or the gateway closes the stream.
func Handle(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	client, creds, err := credentials.Client(cliCtx)
	if err != nil {
		return err
	}

	console, err := client.DialConsole(ctx, creds.ServerID)
	if err != nil {
		return errors.WithMessage(err, "failed to connect to console")
	}
	defer func() {
		err := console.Close()
		if err != nil {
			log.Println("failed to close console:", err)
		}
	}()

	fmt.Println("Connected to console of server", creds.ServerID)

	for {
		event, err := console.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.WithMessage(err, "console stream closed")
		}

		switch event.Event {
		case pterodactyl.EventConsoleOutput:
			for _, line := range event.Args {
				fmt.Println(line)
			}
		case pterodactyl.EventStatus:
			for _, state := range event.Args {
				fmt.Println("[server is", state+"]")
			}
		case pterodactyl.EventAuthSuccess, pterodactyl.EventStats,
			pterodactyl.EventTokenExpiring, pterodactyl.EventTokenExpired:
			// nothing to show
		default:
			log.Println("unhandled console event:", event.Event)
		}
	}
}
