package pteroctl

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Version is set at build time via ldflags.
var Version = "develop"

const ReleasesAPI = "https://api.github.com/repos/pterodeploy/pteroctl/releases"

func StateDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WithMessage(err, "failed to get user home dir")
	}

	dir := filepath.Join(homeDir, ".pteroctl")
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		err = os.Mkdir(dir, 0700)
		if err != nil {
			return "", errors.WithMessage(err, "failed to create state directory")
		}
	}

	return dir, nil
}

func LogsDirectory() (string, error) {
	stateDir, err := StateDirectory()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(stateDir, "logs")
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		err = os.Mkdir(dir, 0700)
		if err != nil {
			return "", errors.WithMessage(err, "failed to create logs directory")
		}
	}

	return dir, nil
}
