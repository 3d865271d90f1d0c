package pterodactyl_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pterodeploy/pteroctl/pkg/pterodactyl"
)

// captureTransport answers every request locally so tests can assert on
// the exact URL and on how many requests were issued.
type captureTransport struct {
	calls      int
	lastReq    *http.Request
	lastBody   []byte
	statusCode int
	body       string
}

func (t *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	t.lastReq = req
	if req.Body != nil {
		t.lastBody, _ = io.ReadAll(req.Body)
	}

	statusCode := t.statusCode
	if statusCode == 0 {
		statusCode = http.StatusNoContent
	}

	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(t.body)),
		Header:     http.Header{},
		Request:    req,
	}, nil
}

func newCaptureClient(t *testing.T, host string, transport *captureTransport) *pterodactyl.Client {
	t.Helper()

	client, err := pterodactyl.NewClient(
		host,
		"ptlc_key",
		pterodactyl.WithHTTPClient(&http.Client{Transport: transport}),
	)
	require.NoError(t, err)

	return client
}

func Test_PowerEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		wantURL string
	}{
		{
			name:    "plain host",
			host:    "https://panel.example.com",
			wantURL: "https://panel.example.com/api/client/servers/abc123/power",
		},
		{
			name:    "trailing slash is normalized",
			host:    "https://panel.example.com/",
			wantURL: "https://panel.example.com/api/client/servers/abc123/power",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			transport := &captureTransport{}
			client := newCaptureClient(t, test.host, transport)

			result, err := client.Power(context.Background(), "abc123", pterodactyl.SignalRestart)
			require.NoError(t, err)

			assert.Equal(t, 1, transport.calls)
			assert.Equal(t, test.wantURL, transport.lastReq.URL.String())
			assert.Equal(t, http.MethodPost, transport.lastReq.Method)
			assert.True(t, result.Success)
			assert.NotContains(t, transport.lastReq.URL.Path, "//")
		})
	}
}

func Test_PowerRequestShape(t *testing.T) {
	transport := &captureTransport{}
	client := newCaptureClient(t, "https://panel.example.com", transport)

	_, err := client.Power(context.Background(), "abc123", pterodactyl.SignalRestart)
	require.NoError(t, err)

	assert.Equal(t, "Bearer ptlc_key", transport.lastReq.Header.Get("Authorization"))
	assert.Equal(t, "application/json", transport.lastReq.Header.Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(transport.lastBody, &body))
	assert.Equal(t, map[string]string{"signal": "restart"}, body)
}

func Test_Power_NoRequestOnBadInput(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		apiKey   string
		serverID string
	}{
		{
			name:     "empty api key",
			host:     "https://panel.example.com",
			apiKey:   "",
			serverID: "abc123",
		},
		{
			name:     "empty server id",
			host:     "https://panel.example.com",
			apiKey:   "ptlc_key",
			serverID: "",
		},
		{
			name:     "malformed host",
			host:     "not-a-url",
			apiKey:   "ptlc_key",
			serverID: "abc123",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			transport := &captureTransport{}

			result, err := pterodactyl.TriggerRestart(
				context.Background(),
				pterodactyl.Credentials{
					Host:     test.host,
					ServerID: test.serverID,
					APIKey:   test.apiKey,
				},
				pterodactyl.WithHTTPClient(&http.Client{Transport: transport}),
			)

			require.Error(t, err)

			var validationErr *pterodactyl.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.False(t, result.Success)
			assert.Equal(t, 0, transport.calls, "no network call should be attempted")
		})
	}
}

func Test_Power_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, result pterodactyl.Result, err error)
	}{
		{
			name:       "204 success",
			statusCode: http.StatusNoContent,
			check: func(t *testing.T, result pterodactyl.Result, err error) {
				t.Helper()
				require.NoError(t, err)
				assert.True(t, result.Success)
				assert.Equal(t, http.StatusNoContent, result.StatusCode)
			},
		},
		{
			name:       "401 auth error",
			statusCode: http.StatusUnauthorized,
			body:       `{"errors":[{"code":"InvalidCredentialsException","status":"401","detail":"Invalid credentials."}]}`,
			check: func(t *testing.T, result pterodactyl.Result, err error) {
				t.Helper()
				require.Error(t, err)

				var authErr *pterodactyl.AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
				assert.Equal(t, "Invalid credentials.", authErr.Detail)
				assert.False(t, result.Success)
				assert.Equal(t, http.StatusUnauthorized, result.StatusCode)
			},
		},
		{
			name:       "403 auth error",
			statusCode: http.StatusForbidden,
			check: func(t *testing.T, result pterodactyl.Result, err error) {
				t.Helper()

				var authErr *pterodactyl.AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, http.StatusForbidden, authErr.StatusCode)
			},
		},
		{
			name:       "404 not found",
			statusCode: http.StatusNotFound,
			body:       `{"errors":[{"code":"NotFoundHttpException","status":"404","detail":"The requested resource could not be found."}]}`,
			check: func(t *testing.T, result pterodactyl.Result, err error) {
				t.Helper()

				var notFoundErr *pterodactyl.NotFoundError
				require.ErrorAs(t, err, &notFoundErr)
				assert.Equal(t, "abc123", notFoundErr.ServerID)
			},
		},
		{
			name:       "500 remote error keeps body",
			statusCode: http.StatusInternalServerError,
			body:       "panel exploded",
			check: func(t *testing.T, result pterodactyl.Result, err error) {
				t.Helper()

				var remoteErr *pterodactyl.RemoteError
				require.ErrorAs(t, err, &remoteErr)
				assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
				assert.Contains(t, remoteErr.Detail, "panel exploded")
				assert.Contains(t, result.Message, "panel exploded")
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/client/servers/abc123/power", r.URL.Path)
				w.WriteHeader(test.statusCode)
				_, _ = w.Write([]byte(test.body))
			}))
			defer server.Close()

			client, err := pterodactyl.NewClient(server.URL, "ptlc_key")
			require.NoError(t, err)

			result, err := client.Power(context.Background(), "abc123", pterodactyl.SignalRestart)
			test.check(t, result, err)
		})
	}
}

func Test_Power_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := pterodactyl.NewClient(
		server.URL,
		"ptlc_key",
		pterodactyl.WithTimeout(50*time.Millisecond),
	)
	require.NoError(t, err)

	start := time.Now()
	result, err := client.Power(context.Background(), "abc123", pterodactyl.SignalRestart)
	elapsed := time.Since(start)

	require.Error(t, err)

	var networkErr *pterodactyl.NetworkError
	require.ErrorAs(t, err, &networkErr)
	assert.True(t, networkErr.Timeout)
	assert.False(t, result.Success)
	assert.Less(t, elapsed, 400*time.Millisecond, "call should return within the timeout bound")
}

func Test_Power_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := pterodactyl.NewClient(server.URL, "ptlc_key")
	require.NoError(t, err)

	_, err = client.Power(context.Background(), "abc123", pterodactyl.SignalRestart)

	var networkErr *pterodactyl.NetworkError
	require.ErrorAs(t, err, &networkErr)
	assert.False(t, networkErr.Timeout)
}

func Test_GetServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/client/servers/abc123", r.URL.Path)
		assert.Equal(t, "Bearer ptlc_key", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{
			"object": "server",
			"attributes": {
				"identifier": "abc123",
				"name": "discord-bot",
				"node": "node01",
				"limits": {"memory": 512, "disk": 2048, "cpu": 100}
			}
		}`))
	}))
	defer server.Close()

	client, err := pterodactyl.NewClient(server.URL, "ptlc_key")
	require.NoError(t, err)

	attrs, err := client.GetServer(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, "abc123", attrs.Identifier)
	assert.Equal(t, "discord-bot", attrs.Name)
	assert.Equal(t, "node01", attrs.Node)
	assert.Equal(t, int64(512), attrs.Limits.Memory)
}

func Test_GetResources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/client/servers/abc123/resources", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"object": "stats",
			"attributes": {
				"current_state": "running",
				"is_suspended": false,
				"resources": {"memory_bytes": 104857600, "cpu_absolute": 12.5, "uptime": 60000}
			}
		}`))
	}))
	defer server.Close()

	client, err := pterodactyl.NewClient(server.URL, "ptlc_key")
	require.NoError(t, err)

	resources, err := client.GetResources(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, "running", resources.CurrentState)
	assert.Equal(t, int64(104857600), resources.Usage.MemoryBytes)
	assert.InDelta(t, 12.5, resources.Usage.CPUAbsolute, 0.001)
}

func Test_ListServers_Paginated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/client/", r.URL.Path)

		page := r.URL.Query().Get("page")
		switch page {
		case "1":
			_, _ = w.Write([]byte(`{
				"object": "list",
				"data": [{"attributes": {"identifier": "one", "name": "first"}}],
				"meta": {"pagination": {"total": 2, "per_page": 1, "current_page": 1, "total_pages": 2}}
			}`))
		case "2":
			_, _ = w.Write([]byte(`{
				"object": "list",
				"data": [{"attributes": {"identifier": "two", "name": "second"}}],
				"meta": {"pagination": {"total": 2, "per_page": 1, "current_page": 2, "total_pages": 2}}
			}`))
		default:
			t.Errorf("unexpected page %q", page)
		}
	}))
	defer server.Close()

	client, err := pterodactyl.NewClient(server.URL, "ptlc_key")
	require.NoError(t, err)

	servers, err := client.ListServers(context.Background())
	require.NoError(t, err)

	require.Len(t, servers, 2)
	assert.Equal(t, "one", servers[0].Identifier)
	assert.Equal(t, "two", servers[1].Identifier)
}

func Test_SendCommand(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/client/servers/abc123/command", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := pterodactyl.NewClient(server.URL, "ptlc_key")
	require.NoError(t, err)

	err = client.SendCommand(context.Background(), "abc123", "say restarting soon")
	require.NoError(t, err)

	assert.JSONEq(t, `{"command": "say restarting soon"}`, string(gotBody))
}

func Test_WithAPIBase(t *testing.T) {
	transport := &captureTransport{}

	client, err := pterodactyl.NewClient(
		"https://panel.example.com",
		"ptlc_key",
		pterodactyl.WithHTTPClient(&http.Client{Transport: transport}),
		pterodactyl.WithAPIBase("/panel/api/client"),
	)
	require.NoError(t, err)

	_, err = client.Power(context.Background(), "abc123", pterodactyl.SignalStop)
	require.NoError(t, err)

	assert.Equal(t,
		"https://panel.example.com/panel/api/client/servers/abc123/power",
		transport.lastReq.URL.String(),
	)
}
