package pterodactyl

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// Console event names as sent by the panel's websocket gateway.
const (
	EventAuthSuccess   = "auth success"
	EventConsoleOutput = "console output"
	EventStatus        = "status"
	EventStats         = "stats"
	EventTokenExpiring = "token expiring"
	EventTokenExpired  = "token expired"
)

// ConsoleEvent is one websocket frame from the panel gateway.
type ConsoleEvent struct {
	Event string   `json:"event"`
	Args  []string `json:"args,omitempty"`
}

// WebsocketCredentials fetches a one-time console token for the server.
// Tokens are short-lived; the gateway announces expiry with a
// "token expiring" event.
func (c *Client) WebsocketCredentials(ctx context.Context, serverID string) (*WebsocketCredentials, error) {
	if serverID == "" {
		return nil, NewValidationError(ErrEmptyServerID)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/servers/"+serverID+"/websocket", nil)
	if err != nil {
		return nil, err
	}

	var response websocketResponse
	_, err = c.do(req, serverID, &response)
	if err != nil {
		return nil, err
	}

	return &response.Data, nil
}

// Console is a live console stream for one server. Not safe for
// concurrent reads; one goroutine should own Next.
type Console struct {
	client   *Client
	serverID string
	conn     *websocket.Conn
}

// DialConsole connects to the server's console gateway and authenticates.
// The caller owns the returned Console and has to Close it.
func (c *Client) DialConsole(ctx context.Context, serverID string) (*Console, error) {
	creds, err := c.WebsocketCredentials(ctx, serverID)
	if err != nil {
		return nil, err
	}

	// The gateway checks the Origin header against the panel host.
	header := http.Header{}
	header.Set("Origin", c.baseURL)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, creds.Socket, header)
	if err != nil {
		if resp != nil {
			return nil, NewRemoteError(resp.StatusCode, "websocket handshake failed: "+err.Error())
		}

		return nil, NewNetworkError(err, isTimeout(err))
	}

	console := &Console{
		client:   c,
		serverID: serverID,
		conn:     conn,
	}

	err = console.auth(creds.Token)
	if err != nil {
		_ = conn.Close()

		return nil, err
	}

	return console, nil
}

func (cn *Console) auth(token string) error {
	err := cn.conn.WriteJSON(ConsoleEvent{
		Event: "auth",
		Args:  []string{token},
	})
	if err != nil {
		return errors.WithMessage(err, "failed to send auth event")
	}

	return nil
}

// Next returns the next gateway event. Token rotation is handled here:
// on "token expiring" a fresh token is fetched and sent, and the event is
// still returned so callers can log it.
func (cn *Console) Next(ctx context.Context) (ConsoleEvent, error) {
	var event ConsoleEvent

	err := cn.conn.ReadJSON(&event)
	if err != nil {
		return event, NewNetworkError(err, isTimeout(err))
	}

	if event.Event == EventTokenExpiring || event.Event == EventTokenExpired {
		creds, err := cn.client.WebsocketCredentials(ctx, cn.serverID)
		if err != nil {
			return event, errors.WithMessage(err, "failed to refresh console token")
		}
		err = cn.auth(creds.Token)
		if err != nil {
			return event, err
		}
	}

	return event, nil
}

// SendCommand writes a console command over the open stream.
func (cn *Console) SendCommand(command string) error {
	err := cn.conn.WriteJSON(ConsoleEvent{
		Event: "send command",
		Args:  []string{command},
	})
	if err != nil {
		return errors.WithMessage(err, "failed to send command")
	}

	return nil
}

func (cn *Console) Close() error {
	return cn.conn.Close()
}
