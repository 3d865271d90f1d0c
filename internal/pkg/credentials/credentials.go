package credentials

import (
	"github.com/urfave/cli/v2"

	contextInternal "github.com/pterodeploy/pteroctl/internal/context"
	"github.com/pterodeploy/pteroctl/pkg/pterodactyl"
)

// FromCLI resolves credentials for one invocation. Precedence: flags (and
// the environment variables bound to them) over the selected config
// profile. The result is validated before it is returned, so callers can
// go straight to the network.
func FromCLI(cliCtx *cli.Context) (pterodactyl.Credentials, error) {
	cfg := contextInternal.ConfigFromContext(cliCtx.Context)

	profile, err := cfg.Profile(cliCtx.String("profile"))
	if err != nil {
		return pterodactyl.Credentials{}, err
	}

	creds := pterodactyl.Credentials{
		Host:     cliCtx.String("host"),
		ServerID: cliCtx.String("server-id"),
		APIKey:   cliCtx.String("api-key"),
	}

	if creds.Host == "" {
		creds.Host = profile.Host
	}
	if creds.ServerID == "" {
		creds.ServerID = profile.ServerID
	}
	if creds.APIKey == "" {
		creds.APIKey = profile.APIKey
	}

	creds.Host = pterodactyl.NormalizeHost(creds.Host)

	if err := creds.Validate(); err != nil {
		return pterodactyl.Credentials{}, err
	}

	return creds, nil
}

// Client builds a panel client from the resolved credentials.
func Client(cliCtx *cli.Context) (*pterodactyl.Client, pterodactyl.Credentials, error) {
	creds, err := FromCLI(cliCtx)
	if err != nil {
		return nil, pterodactyl.Credentials{}, err
	}

	client, err := pterodactyl.NewClient(creds.Host, creds.APIKey)
	if err != nil {
		return nil, pterodactyl.Credentials{}, err
	}

	return client, creds, nil
}

// AccountClient builds a client for account-scoped calls, which need no
// server id. Host and key validation still applies.
func AccountClient(cliCtx *cli.Context) (*pterodactyl.Client, error) {
	cfg := contextInternal.ConfigFromContext(cliCtx.Context)

	profile, err := cfg.Profile(cliCtx.String("profile"))
	if err != nil {
		return nil, err
	}

	host := cliCtx.String("host")
	if host == "" {
		host = profile.Host
	}
	apiKey := cliCtx.String("api-key")
	if apiKey == "" {
		apiKey = profile.APIKey
	}

	return pterodactyl.NewClient(pterodactyl.NormalizeHost(host), apiKey)
}
