package pterodactyl

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var (
	ErrEmptyHost     = errors.New("panel host is empty")
	ErrEmptyServerID = errors.New("server id is empty")
	ErrEmptyAPIKey   = errors.New("api key is empty")
)

// Credentials is the full set of values needed to act on one server:
// the panel base URL, the client API key and the server identifier.
type Credentials struct {
	Host     string
	ServerID string
	APIKey   string
}

// Validate checks every field and reports all violations at once.
// It returns a *ValidationError or nil.
func (c Credentials) Validate() error {
	var result error

	if c.Host == "" {
		result = multierr.Append(result, ErrEmptyHost)
	} else if err := validateHost(c.Host); err != nil {
		result = multierr.Append(result, err)
	}

	if c.ServerID == "" {
		result = multierr.Append(result, ErrEmptyServerID)
	}

	if c.APIKey == "" {
		result = multierr.Append(result, ErrEmptyAPIKey)
	}

	if result != nil {
		return NewValidationError(result)
	}

	return nil
}

func validateHost(host string) error {
	u, err := url.Parse(host)
	if err != nil {
		return errors.WithMessagef(err, "failed to parse panel host %q", host)
	}

	if !u.IsAbs() || u.Host == "" {
		return errors.Errorf("panel host %q is not an absolute URL", host)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("panel host %q should use http or https", host)
	}

	return nil
}

// NormalizeHost strips trailing slashes so joining with API paths never
// produces a double slash.
func NormalizeHost(host string) string {
	return strings.TrimRight(host, "/")
}
