package pterodactyl

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) GetServer(ctx context.Context, serverID string) (*ServerAttributes, error) {
	if serverID == "" {
		return nil, NewValidationError(ErrEmptyServerID)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/servers/"+serverID, nil)
	if err != nil {
		return nil, err
	}

	var server Server
	_, err = c.do(req, serverID, &server)
	if err != nil {
		return nil, err
	}

	return &server.Attributes, nil
}

func (c *Client) GetResources(ctx context.Context, serverID string) (*Resources, error) {
	if serverID == "" {
		return nil, NewValidationError(ErrEmptyServerID)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/servers/"+serverID+"/resources", nil)
	if err != nil {
		return nil, err
	}

	var resources resourcesResponse
	_, err = c.do(req, serverID, &resources)
	if err != nil {
		return nil, err
	}

	return &resources.Attributes, nil
}

// ListServers walks every page of the account's server list.
func (c *Client) ListServers(ctx context.Context) ([]ServerAttributes, error) {
	var servers []ServerAttributes

	for page := 1; ; page++ {
		req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/?page=%d", page), nil)
		if err != nil {
			return nil, err
		}

		var list serverListResponse
		_, err = c.do(req, "", &list)
		if err != nil {
			return nil, err
		}

		for _, server := range list.Data {
			servers = append(servers, server.Attributes)
		}

		if page >= list.Meta.Pagination.TotalPages {
			break
		}
	}

	return servers, nil
}

func (c *Client) GetAccount(ctx context.Context) (*AccountAttributes, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/account", nil)
	if err != nil {
		return nil, err
	}

	var account accountResponse
	_, err = c.do(req, "", &account)
	if err != nil {
		return nil, err
	}

	return &account.Attributes, nil
}

// SendCommand writes one line to the server console. The server has to be
// running for the panel to accept it.
func (c *Client) SendCommand(ctx context.Context, serverID string, command string) error {
	if serverID == "" {
		return NewValidationError(ErrEmptyServerID)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/servers/"+serverID+"/command", commandRequest{
		Command: command,
	})
	if err != nil {
		return err
	}

	_, err = c.do(req, serverID, nil)

	return err
}

// Reinstall asks the panel to run the server's egg install script again.
// Server files may be wiped depending on the egg configuration.
func (c *Client) Reinstall(ctx context.Context, serverID string) error {
	if serverID == "" {
		return NewValidationError(ErrEmptyServerID)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/servers/"+serverID+"/settings/reinstall", nil)
	if err != nil {
		return err
	}

	_, err = c.do(req, serverID, nil)

	return err
}
