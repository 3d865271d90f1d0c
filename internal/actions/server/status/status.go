package status

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/pterodeploy/pteroctl/internal/pkg/credentials"
)

func Handle(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	client, creds, err := credentials.Client(cliCtx)
	if err != nil {
		return err
	}

	server, err := client.GetServer(ctx, creds.ServerID)
	if err != nil {
		return errors.WithMessage(err, "failed to get server details")
	}

	resources, err := client.GetResources(ctx, creds.ServerID)
	if err != nil {
		return errors.WithMessage(err, "failed to get server resources")
	}

	fmt.Println("Server: ", server.Name, "("+server.Identifier+")")
	fmt.Println("Node:   ", server.Node)
	fmt.Println("State:  ", resources.CurrentState)
	if server.IsSuspended {
		fmt.Println("Server is suspended")
	}
	if server.IsInstalling {
		fmt.Println("Server is installing")
	}

	fmt.Println("Memory: ", humanize.IBytes(uint64(resources.Usage.MemoryBytes)))
	fmt.Println("Disk:   ", humanize.IBytes(uint64(resources.Usage.DiskBytes)))
	fmt.Printf("CPU:     %.1f%%\n", resources.Usage.CPUAbsolute)
	if resources.Usage.Uptime > 0 {
		uptime := time.Duration(resources.Usage.Uptime) * time.Millisecond
		fmt.Println("Uptime: ", uptime.Round(time.Second))
	}

	return nil
}
