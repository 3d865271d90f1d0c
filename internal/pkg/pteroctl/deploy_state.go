package pteroctl

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const (
	deployStateFile = "deploy_state.json"
)

// DeployState records the outcome of the last deploy so a later run (or a
// human) can see what the pipeline did.
type DeployState struct {
	Host       string    `json:"host"`
	ServerID   string    `json:"serverId"`
	Signal     string    `json:"signal"`
	Success    bool      `json:"success"`
	StatusCode int       `json:"statusCode,omitempty"`
	Message    string    `json:"message,omitempty"`
	DeployedAt time.Time `json:"deployedAt"`
}

func SaveDeployState(_ context.Context, state DeployState) error {
	b, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "failed to marshal json")
	}

	dir, err := StateDirectory()
	if err != nil {
		return errors.WithMessage(err, "failed to get state directory")
	}

	err = os.WriteFile(
		filepath.Join(dir, deployStateFile),
		b,
		0600,
	)
	if err != nil {
		return errors.WithMessage(err, "failed to write file")
	}

	return nil
}

func LoadDeployState(_ context.Context) (DeployState, error) {
	var state DeployState

	dir, err := StateDirectory()
	if err != nil {
		return state, errors.WithMessage(err, "failed to get state directory")
	}

	b, err := os.ReadFile(filepath.Join(dir, deployStateFile))
	if err != nil {
		return state, errors.WithMessage(err, "failed to read file")
	}

	err = json.Unmarshal(b, &state)
	if err != nil {
		return state, errors.WithMessage(err, "failed to unmarshal json")
	}

	return state, nil
}
