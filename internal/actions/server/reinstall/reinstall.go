package reinstall

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/pterodeploy/pteroctl/internal/pkg/credentials"
	"github.com/pterodeploy/pteroctl/pkg/utils"
)

func Handle(cliCtx *cli.Context) error {
	client, creds, err := credentials.Client(cliCtx)
	if err != nil {
		return err
	}

	if !cliCtx.Bool("yes") {
		answer, err := utils.Ask(
			fmt.Sprintf("Reinstall server %s? Server files may be wiped. (y/N): ", creds.ServerID),
			true,
			nil,
		)
		if err != nil {
			return errors.WithMessage(err, "failed to read answer")
		}
		if answer != "y" && answer != "Y" {
			fmt.Println("Canceled")

			return nil
		}
	}

	err = client.Reinstall(cliCtx.Context, creds.ServerID)
	if err != nil {
		return errors.WithMessage(err, "failed to reinstall server")
	}

	fmt.Println("Reinstall started")

	return nil
}
