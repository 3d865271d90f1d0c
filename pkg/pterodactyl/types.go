package pterodactyl

// Client API wire types. Field layout follows the panel's attribute
// envelopes: every object arrives as {"object": ..., "attributes": {...}}.

type ServerAttributes struct {
	Identifier     string       `json:"identifier"`
	UUID           string       `json:"uuid"`
	Name           string       `json:"name"`
	Node           string       `json:"node"`
	Description    string       `json:"description"`
	Limits         ServerLimits `json:"limits"`
	Status         string       `json:"status"`
	IsSuspended    bool         `json:"is_suspended"`
	IsInstalling   bool         `json:"is_installing"`
	IsTransferring bool         `json:"is_transferring"`
}

type ServerLimits struct {
	Memory int64 `json:"memory"`
	Swap   int64 `json:"swap"`
	Disk   int64 `json:"disk"`
	IO     int64 `json:"io"`
	CPU    int64 `json:"cpu"`
}

type Server struct {
	Attributes ServerAttributes `json:"attributes"`
}

type serverListResponse struct {
	Object string   `json:"object"`
	Data   []Server `json:"data"`
	Meta   struct {
		Pagination struct {
			Total       int `json:"total"`
			PerPage     int `json:"per_page"`
			CurrentPage int `json:"current_page"`
			TotalPages  int `json:"total_pages"`
		} `json:"pagination"`
	} `json:"meta"`
}

type AccountAttributes struct {
	ID        int    `json:"id"`
	Admin     bool   `json:"admin"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Language  string `json:"language"`
}

type accountResponse struct {
	Attributes AccountAttributes `json:"attributes"`
}

// Resources is the live utilization snapshot of a server. CurrentState is
// one of "running", "starting", "stopping", "offline".
type Resources struct {
	CurrentState string `json:"current_state"`
	IsSuspended  bool   `json:"is_suspended"`
	Usage        struct {
		MemoryBytes    int64   `json:"memory_bytes"`
		CPUAbsolute    float64 `json:"cpu_absolute"`
		DiskBytes      int64   `json:"disk_bytes"`
		NetworkRxBytes int64   `json:"network_rx_bytes"`
		NetworkTxBytes int64   `json:"network_tx_bytes"`
		Uptime         int64   `json:"uptime"`
	} `json:"resources"`
}

type resourcesResponse struct {
	Attributes Resources `json:"attributes"`
}

// WebsocketCredentials is a one-time console token together with the
// socket URL it is valid for.
type WebsocketCredentials struct {
	Token  string `json:"token"`
	Socket string `json:"socket"`
}

type websocketResponse struct {
	Data WebsocketCredentials `json:"data"`
}

type powerRequest struct {
	Signal string `json:"signal"`
}

type commandRequest struct {
	Command string `json:"command"`
}
