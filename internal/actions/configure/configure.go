package configure

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/pterodeploy/pteroctl/internal/config"
	"github.com/pterodeploy/pteroctl/pkg/pterodactyl"
	"github.com/pterodeploy/pteroctl/pkg/utils"
)

// Handle interactively writes a credential profile to the config file.
func Handle(cliCtx *cli.Context) error {
	configPath := cliCtx.String("config")
	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			return errors.WithMessage(err, "failed to get config path")
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.WithMessage(err, "failed to load config")
	}

	profileName, err := utils.Ask("Profile name [default]: ", true, nil)
	if err != nil {
		return errors.WithMessage(err, "failed to read profile name")
	}
	if profileName == "" {
		profileName = "default"
	}

	host, err := utils.Ask("Panel host (e.g. https://panel.example.com): ", false, func(s string) (bool, string) {
		if err := (pterodactyl.Credentials{Host: s, ServerID: "-", APIKey: "-"}).Validate(); err != nil {
			return false, err.Error()
		}

		return true, ""
	})
	if err != nil {
		return errors.WithMessage(err, "failed to read host")
	}

	serverID, err := utils.Ask("Server ID: ", false, nil)
	if err != nil {
		return errors.WithMessage(err, "failed to read server id")
	}

	apiKey, err := promptAPIKey()
	if err != nil {
		return errors.WithMessage(err, "failed to read api key")
	}
	if apiKey == "" {
		return errors.New("api key cannot be empty")
	}

	if cfg.Profiles == nil {
		cfg.Profiles = map[string]config.Profile{}
	}
	cfg.Profiles[profileName] = config.Profile{
		Host:     pterodactyl.NormalizeHost(host),
		ServerID: serverID,
		APIKey:   apiKey,
	}
	if cfg.DefaultProfile == "" {
		cfg.DefaultProfile = profileName
	}

	err = config.Save(configPath, cfg)
	if err != nil {
		return errors.WithMessage(err, "failed to save config")
	}

	fmt.Println("Saved profile", profileName, "to", configPath)

	return nil
}

func promptAPIKey() (string, error) {
	fmt.Print("API key (input hidden): ")

	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", errors.WithMessage(err, "failed to read password input")
	}

	return string(key), nil
}
