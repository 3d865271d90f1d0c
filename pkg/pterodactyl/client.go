package pterodactyl

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultAPIBase = "/api/client"
	defaultTimeout = 30 * time.Second
	acceptHeader   = "application/json"
)

// Client talks to the panel's client API on behalf of one API key.
// It holds no mutable state and may serve concurrent calls.
type Client struct {
	baseURL    string
	apiBase    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithAPIBase overrides the API path prefix. Panels behind rewriting
// proxies may expose the client API somewhere other than /api/client.
func WithAPIBase(apiBase string) Option {
	return func(c *Client) {
		c.apiBase = apiBase
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

func NewClient(host string, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, NewValidationError(ErrEmptyAPIKey)
	}
	if host == "" {
		return nil, NewValidationError(ErrEmptyHost)
	}
	if err := validateHost(host); err != nil {
		return nil, NewValidationError(err)
	}

	c := &Client{
		baseURL:   NormalizeHost(host),
		apiBase:   defaultAPIBase,
		apiKey:    apiKey,
		userAgent: "pteroctl",
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) newRequest(ctx context.Context, method string, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WithMessage(err, "failed to marshal request body")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+c.apiBase+path, reader)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create request")
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do sends the request, maps non-success statuses onto the error taxonomy
// and decodes the body into out when out is not nil. The returned status
// code is zero when the request never reached the panel.
func (c *Client) do(req *http.Request, serverID string, out interface{}) (int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, NewNetworkError(err, isTimeout(err))
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			log.Println("failed to close response body:", err)
		}
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, statusError(resp, serverID)
	}

	if out != nil {
		err = json.NewDecoder(resp.Body).Decode(out)
		if err != nil {
			return resp.StatusCode, errors.WithMessage(err, "failed to decode response")
		}
	}

	return resp.StatusCode, nil
}

func statusError(resp *http.Response, serverID string) error {
	detail := responseDetail(resp.Body)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return NewAuthError(resp.StatusCode, detail)
	case http.StatusNotFound:
		if serverID != "" {
			return NewNotFoundError(serverID)
		}

		return NewRemoteError(resp.StatusCode, detail)
	default:
		return NewRemoteError(resp.StatusCode, detail)
	}
}

// responseDetail pulls a human-readable reason out of the panel's error
// envelope, falling back to the raw body.
func responseDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var envelope apiErrorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if detail := envelope.detail(); detail != "" {
			return detail
		}
	}

	return string(bytes.TrimSpace(raw))
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}
