package deploy

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/pterodeploy/pteroctl/internal/pkg/credentials"
	"github.com/pterodeploy/pteroctl/internal/pkg/pteroctl"
	"github.com/pterodeploy/pteroctl/pkg/pterodactyl"
)

const (
	stateRunning = "running"

	pollInterval = 2 * time.Second
)

// Handle is the CI entry point: trigger a restart and optionally wait
// until the server reports running again. The process exit status is the
// pass/fail signal for the pipeline.
//
//nolint:funlen
func Handle(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	if cliCtx.Bool("last") {
		return printLastDeploy(ctx)
	}

	creds, err := credentials.FromCLI(cliCtx)
	if err != nil {
		return err
	}

	fmt.Println("Restarting server", creds.ServerID, "on", creds.Host, "...")

	result, err := pterodactyl.TriggerRestart(ctx, creds)

	state := pteroctl.DeployState{
		Host:       creds.Host,
		ServerID:   creds.ServerID,
		Signal:     string(pterodactyl.SignalRestart),
		Success:    result.Success,
		StatusCode: result.StatusCode,
		Message:    result.Message,
		DeployedAt: time.Now(),
	}
	if saveErr := pteroctl.SaveDeployState(ctx, state); saveErr != nil {
		log.Println(errors.WithMessage(saveErr, "failed to save deploy state"))
	}

	if err != nil {
		return errors.WithMessage(err, "failed to trigger restart")
	}

	fmt.Println("Restart accepted by panel")

	if !cliCtx.Bool("wait") {
		return nil
	}

	client, err := pterodactyl.NewClient(creds.Host, creds.APIKey)
	if err != nil {
		return err
	}

	fmt.Println("Waiting for server to report running ...")

	err = waitForRunning(ctx, client, creds.ServerID, cliCtx.Duration("wait-timeout"))
	if err != nil {
		return err
	}

	fmt.Println("Server is running")

	return nil
}

// waitForRunning polls the resource endpoint until the server reports
// running. A restart passes through stopping and starting first, so a
// running report straight after the trigger is the old process; it only
// counts once the state has left running, or after it has stayed running
// long enough that the restart clearly finished between polls.
func waitForRunning(ctx context.Context, client *pterodactyl.Client, serverID string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	const stablePolls = 5

	leftRunning := false
	runningPolls := 0

	for {
		select {
		case <-ctx.Done():
			return errors.New("timed out waiting for server to report running")
		case <-ticker.C:
			resources, err := client.GetResources(ctx, serverID)
			if err != nil {
				return errors.WithMessage(err, "failed to get server state")
			}

			log.Println("server state:", resources.CurrentState)

			if resources.CurrentState != stateRunning {
				leftRunning = true
				runningPolls = 0

				continue
			}

			runningPolls++
			if leftRunning || runningPolls >= stablePolls {
				return nil
			}
		}
	}
}

func printLastDeploy(ctx context.Context) error {
	state, err := pteroctl.LoadDeployState(ctx)
	if err != nil {
		return errors.WithMessage(err, "failed to load deploy state")
	}

	fmt.Println("Last deploy:")
	fmt.Println("  Host:  ", state.Host)
	fmt.Println("  Server:", state.ServerID)
	fmt.Println("  Signal:", state.Signal)
	fmt.Println("  Time:  ", state.DeployedAt.Format(time.RFC3339))
	if state.Success {
		fmt.Println("  Result: success")
	} else {
		fmt.Printf("  Result: failed (status %d) %s\n", state.StatusCode, state.Message)
	}

	return nil
}
