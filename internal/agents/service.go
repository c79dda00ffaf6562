// Package agents assembles the canned payloads served by the hawker,
// psi and merlion agents. It is the single home of the fixture data,
// shared by the HTTP handlers and the MCP tools.
package agents

import (
	"time"

	"github.com/lion-city/sgagents/internal/trust"
	"github.com/lion-city/sgagents/pkg/protocol"
)

// Version is the service version reported on the index endpoint.
const Version = "1.0.0"

// CategoryAll requests attractions from every category.
const CategoryAll = "all"

// DefaultLocation is the PSI location used when none is given.
const DefaultLocation = "national"

// Service answers agent queries from fixture data.
type Service struct {
	trust *trust.Registry
	now   func() time.Time
}

// New creates a Service backed by the given trust registry.
func New(reg *trust.Registry) *Service {
	return &Service{trust: reg, now: time.Now}
}

// Index returns the service banner with the full agent listing.
func (s *Service) Index() protocol.IndexResponse {
	agents := make(map[string]protocol.AgentInfo, s.trust.Count())
	for id, rec := range s.trust.All() {
		agents[id] = ToAgentInfo(rec)
	}
	return protocol.IndexResponse{
		Message: "Singapore Multi-Agent System",
		Version: Version,
		Agents:  agents,
		Endpoints: map[string]string{
			"hawker":  "/api/hawker",
			"psi":     "/api/psi",
			"merlion": "/api/merlion",
		},
	}
}

// SearchHawker returns the hawker centres matching query. The demo data
// set is returned for every query.
func (s *Service) SearchHawker(query string) protocol.HawkerResponse {
	return protocol.HawkerResponse{
		Agent:   s.agentInfo("hawker"),
		Query:   query,
		Results: append([]protocol.HawkerCentre(nil), hawkerCentres...),
		Message: "Found hawker centers matching: " + query,
	}
}

// PSIReading returns the current PSI readings for a location.
func (s *Service) PSIReading(location string) protocol.PSIResponse {
	return protocol.PSIResponse{
		Agent:          s.agentInfo("psi"),
		Timestamp:      s.now().UTC().Format(time.RFC3339),
		Location:       location,
		PSIReadings:    copyReadings(psiReadings),
		AirQuality:     psiAirQuality,
		HealthAdvisory: psiHealthAdvisory,
	}
}

// Attractions returns tourist attractions, filtered to one category
// unless category is CategoryAll. Unknown categories yield an empty
// list, not an error.
func (s *Service) Attractions(category string) protocol.MerlionResponse {
	var results map[string][]protocol.Attraction
	if category == CategoryAll {
		results = make(map[string][]protocol.Attraction, len(attractions))
		for name, entries := range attractions {
			results[name] = append([]protocol.Attraction(nil), entries...)
		}
	} else {
		results = map[string][]protocol.Attraction{
			category: append([]protocol.Attraction{}, attractions[category]...),
		}
	}
	return protocol.MerlionResponse{
		Agent:       s.agentInfo("merlion"),
		Category:    category,
		Attractions: results,
		Message:     "Tourist attractions for category: " + category,
	}
}

// Trust exposes the backing registry for trust checks at the boundary.
func (s *Service) Trust() *trust.Registry {
	return s.trust
}

func (s *Service) agentInfo(id string) *protocol.AgentInfo {
	rec, ok := s.trust.Info(id)
	if !ok {
		return nil
	}
	info := ToAgentInfo(rec)
	return &info
}

// ToAgentInfo converts a registry record to its wire shape.
func ToAgentInfo(rec trust.Record) protocol.AgentInfo {
	return protocol.AgentInfo{
		ID:           rec.ID,
		Name:         rec.Name,
		Description:  rec.Description,
		TrustLevel:   rec.TrustLevel,
		Capabilities: rec.Capabilities,
	}
}

func copyReadings(src map[string]int) map[string]int {
	out := make(map[string]int, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
