package pterodactyl

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed local input. It is returned before any
// network call is attempted.
type ValidationError struct {
	Err error
}

func NewValidationError(err error) *ValidationError {
	return &ValidationError{
		Err: err,
	}
}

func (e *ValidationError) Error() string {
	return "invalid credentials: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// AuthError reports that the panel rejected the API key (401/403).
type AuthError struct {
	StatusCode int
	Detail     string
}

func NewAuthError(statusCode int, detail string) *AuthError {
	return &AuthError{
		StatusCode: statusCode,
		Detail:     detail,
	}
}

func (e *AuthError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("panel rejected credentials (status %d)", e.StatusCode)
	}

	return fmt.Sprintf("panel rejected credentials (status %d): %s", e.StatusCode, e.Detail)
}

// NotFoundError reports that the panel does not know the requested server.
type NotFoundError struct {
	ServerID string
}

func NewNotFoundError(serverID string) *NotFoundError {
	return &NotFoundError{
		ServerID: serverID,
	}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("server %s not found on panel", e.ServerID)
}

// NetworkError reports a transport failure: connection refused, DNS failure
// or a timeout. The underlying cause is kept for diagnosis.
type NetworkError struct {
	Err     error
	Timeout bool
}

func NewNetworkError(err error, timeout bool) *NetworkError {
	return &NetworkError{
		Err:     err,
		Timeout: timeout,
	}
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return "panel request timed out: " + e.Err.Error()
	}

	return "panel request failed: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RemoteError reports any other non-success answer from the panel.
type RemoteError struct {
	StatusCode int
	Detail     string
}

func NewRemoteError(statusCode int, detail string) *RemoteError {
	return &RemoteError{
		StatusCode: statusCode,
		Detail:     detail,
	}
}

func (e *RemoteError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("panel returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("panel returned status %d: %s", e.StatusCode, e.Detail)
}

type apiError struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

type apiErrorEnvelope struct {
	Errors []apiError `json:"errors"`
}

func (e apiErrorEnvelope) detail() string {
	details := make([]string, 0, len(e.Errors))
	for _, apiErr := range e.Errors {
		if apiErr.Detail == "" {
			continue
		}
		details = append(details, apiErr.Detail)
	}

	return strings.Join(details, "; ")
}
