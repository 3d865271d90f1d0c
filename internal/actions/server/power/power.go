package power

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/pterodeploy/pteroctl/internal/pkg/credentials"
	"github.com/pterodeploy/pteroctl/pkg/pterodactyl"
)

// Handle builds the action for one power signal. All four power verbs
// share it: the only difference is the signal on the wire.
func Handle(signal pterodactyl.PowerSignal) cli.ActionFunc {
	return func(cliCtx *cli.Context) error {
		client, creds, err := credentials.Client(cliCtx)
		if err != nil {
			return err
		}

		fmt.Printf("Sending %s signal to server %s ...\n", signal, creds.ServerID)

		result, err := client.Power(cliCtx.Context, creds.ServerID, signal)
		if err != nil {
			return errors.WithMessagef(err, "failed to %s server", signal)
		}

		fmt.Printf("Panel accepted %s (status %d)\n", signal, result.StatusCode)

		return nil
	}
}
