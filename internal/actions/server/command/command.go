package command

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/pterodeploy/pteroctl/internal/pkg/credentials"
)

func Handle(cliCtx *cli.Context) error {
	cmd := strings.Join(cliCtx.Args().Slice(), " ")
	if cmd == "" {
		return errors.New("command is required as argument")
	}

	client, creds, err := credentials.Client(cliCtx)
	if err != nil {
		return err
	}

	err = client.SendCommand(cliCtx.Context, creds.ServerID, cmd)
	if err != nil {
		return errors.WithMessage(err, "failed to send command")
	}

	fmt.Println("Command sent")

	return nil
}
