package servers

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/pterodeploy/pteroctl/internal/pkg/credentials"
	"github.com/pterodeploy/pteroctl/pkg/pterodactyl"
)

func Handle(cliCtx *cli.Context) error {
	client, err := credentials.AccountClient(cliCtx)
	if err != nil {
		return err
	}

	servers, err := client.ListServers(cliCtx.Context)
	if err != nil {
		return errors.WithMessage(err, "failed to list servers")
	}

	if len(servers) == 0 {
		fmt.Println("No servers found for this account")

		return nil
	}

	if cliCtx.Bool("suspended") {
		servers = lo.Filter(servers, func(s pterodactyl.ServerAttributes, _ int) bool {
			return s.IsSuspended
		})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tNODE\tSTATUS")

	rows := lo.Map(servers, func(s pterodactyl.ServerAttributes, _ int) string {
		status := s.Status
		if status == "" {
			status = "-"
		}
		if s.IsSuspended {
			status = "suspended"
		}

		return s.Identifier + "\t" + s.Name + "\t" + s.Node + "\t" + status
	})

	for _, row := range rows {
		_, _ = fmt.Fprintln(w, row)
	}

	return w.Flush()
}
