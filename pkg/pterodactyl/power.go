package pterodactyl

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// PowerSignal is a power action the panel understands.
type PowerSignal string

const (
	SignalStart   PowerSignal = "start"
	SignalStop    PowerSignal = "stop"
	SignalRestart PowerSignal = "restart"
	SignalKill    PowerSignal = "kill"
)

func ParsePowerSignal(s string) (PowerSignal, error) {
	switch PowerSignal(s) {
	case SignalStart, SignalStop, SignalRestart, SignalKill:
		return PowerSignal(s), nil
	default:
		return "", errors.Errorf("unknown power signal %q", s)
	}
}

// Result is the outcome of one power action. StatusCode is zero when the
// request never reached the panel.
type Result struct {
	Success    bool
	StatusCode int
	Message    string
}

// Power sends one power signal to the named server. Exactly one request is
// issued; nothing is retried.
func (c *Client) Power(ctx context.Context, serverID string, signal PowerSignal) (Result, error) {
	if serverID == "" {
		return Result{}, NewValidationError(ErrEmptyServerID)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/servers/"+serverID+"/power", powerRequest{
		Signal: string(signal),
	})
	if err != nil {
		return Result{}, err
	}

	statusCode, err := c.do(req, serverID, nil)
	if err != nil {
		return Result{
			Success:    false,
			StatusCode: statusCode,
			Message:    err.Error(),
		}, err
	}

	return Result{
		Success:    true,
		StatusCode: statusCode,
	}, nil
}

// TriggerRestart validates the credentials and issues a single restart
// power action. This is the whole deploy hook: one call, one request.
func TriggerRestart(ctx context.Context, creds Credentials, opts ...Option) (Result, error) {
	if err := creds.Validate(); err != nil {
		return Result{}, err
	}

	client, err := NewClient(creds.Host, creds.APIKey, opts...)
	if err != nil {
		return Result{}, err
	}

	return client.Power(ctx, creds.ServerID, SignalRestart)
}
