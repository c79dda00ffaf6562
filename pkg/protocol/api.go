// Package protocol defines the JSON wire types shared by the sgagentd
// HTTP surfaces, the sgagentctl client, and the MCP tools.
package protocol

import "time"

// ErrorResponse is the body of every non-200 response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AgentInfo describes one registered agent as it appears on the wire.
type AgentInfo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	TrustLevel   string   `json:"trust_level"`
	Capabilities []string `json:"capabilities"`
}

// IndexResponse is returned by GET /.
type IndexResponse struct {
	Message   string               `json:"message"`
	Version   string               `json:"version"`
	Agents    map[string]AgentInfo `json:"agents"`
	Endpoints map[string]string    `json:"endpoints"`
}

// HawkerCentre is one entry in a hawker search result.
type HawkerCentre struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	PopularStalls []string `json:"popular_stalls"`
}

// HawkerResponse is returned by /api/hawker.
type HawkerResponse struct {
	Agent   *AgentInfo     `json:"agent"`
	Query   string         `json:"query"`
	Results []HawkerCentre `json:"results"`
	Message string         `json:"message"`
}

// PSIResponse is returned by /api/psi.
type PSIResponse struct {
	Agent          *AgentInfo     `json:"agent"`
	Timestamp      string         `json:"timestamp"`
	Location       string         `json:"location"`
	PSIReadings    map[string]int `json:"psi_readings"`
	AirQuality     string         `json:"air_quality"`
	HealthAdvisory string         `json:"health_advisory"`
}

// Attraction is one tourist attraction entry.
type Attraction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// MerlionResponse is returned by /api/merlion.
type MerlionResponse struct {
	Agent       *AgentInfo              `json:"agent"`
	Category    string                  `json:"category"`
	Attractions map[string][]Attraction `json:"attractions"`
	Message     string                  `json:"message"`
}

// StatusResponse is returned by GET /api/v1/status on the control socket.
type StatusResponse struct {
	Status     string    `json:"status"`
	Version    string    `json:"version"`
	Uptime     string    `json:"uptime"`
	StartedAt  time.Time `json:"started_at"`
	AgentCount int       `json:"agent_count"`
}

// AgentsResponse is returned by GET /api/v1/agents on the control socket.
type AgentsResponse struct {
	Agents map[string]AgentInfo `json:"agents"`
}
