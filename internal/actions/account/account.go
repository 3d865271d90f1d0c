package account

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/pterodeploy/pteroctl/internal/pkg/credentials"
)

func Handle(cliCtx *cli.Context) error {
	client, err := credentials.AccountClient(cliCtx)
	if err != nil {
		return err
	}

	account, err := client.GetAccount(cliCtx.Context)
	if err != nil {
		return errors.WithMessage(err, "failed to get account")
	}

	fmt.Println("Username:", account.Username)
	fmt.Println("Email:   ", account.Email)
	if account.Admin {
		fmt.Println("Account has admin access")
	}

	return nil
}
