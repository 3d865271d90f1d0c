package config

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

const configFileName = "config.yaml"

var ErrProfileNotFound = errors.New("profile not found in config")

// Profile is one named set of panel credentials.
type Profile struct {
	Host     string `yaml:"host"`
	ServerID string `yaml:"server_id"`
	APIKey   string `yaml:"api_key"`
}

// Config is the on-disk configuration: named profiles plus the one used
// when no profile is asked for. Flags and environment variables always
// win over profile values.
type Config struct {
	DefaultProfile string             `yaml:"default_profile,omitempty"`
	Profiles       map[string]Profile `yaml:"profiles,omitempty"`
}

func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WithMessage(err, "failed to get user home dir")
	}

	return filepath.Join(homeDir, ".pteroctl", configFileName), nil
}

// Load reads the config file. A missing file is not an error: the tool
// works from flags and environment alone.
func Load(path string) (Config, error) {
	var cfg Config

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.WithMessage(err, "failed to read config file")
	}

	err = yaml.Unmarshal(b, &cfg)
	if err != nil {
		return cfg, errors.WithMessagef(err, "failed to parse config file %s", path)
	}

	return cfg, nil
}

func Save(path string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WithMessage(err, "failed to marshal config")
	}

	err = os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		return errors.WithMessage(err, "failed to create config directory")
	}

	err = os.WriteFile(path, b, 0600)
	if err != nil {
		return errors.WithMessage(err, "failed to write config file")
	}

	return nil
}

// Profile resolves a profile by name; an empty name means the default
// profile. A config with no profiles resolves to an empty profile.
func (c Config) Profile(name string) (Profile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	if name == "" {
		return Profile{}, nil
	}

	profile, ok := c.Profiles[name]
	if !ok {
		return Profile{}, errors.WithMessagef(ErrProfileNotFound, "profile %q", name)
	}

	return profile, nil
}
