package models

// ChatResponse echoes the question and carries the model's trimmed answer.
type ChatResponse struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// FallbackResponse is returned by the process-wide 404, 405 and 500 handlers.
type FallbackResponse struct {
	Error              string   `json:"error"`
	Message            string   `json:"message"`
	AvailableEndpoints []string `json:"available_endpoints,omitempty"`
}

type AckResponse struct {
	Status string `json:"status"`
}

// ServerInfo reflects the network identity of the running process.
type ServerInfo struct {
	Hostname  string `json:"hostname"`
	IPAddress string `json:"ip_address"`
	Port      int    `json:"port"`
}

// StatusResponse is the envelope used by GET / and GET /health. On failure
// only Status and Message are set.
type StatusResponse struct {
	Status     string            `json:"status"`
	Message    string            `json:"message"`
	ServerInfo *ServerInfo       `json:"server_info,omitempty"`
	Endpoints  map[string]string `json:"endpoints,omitempty"`
}
