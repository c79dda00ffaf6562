// Package trust holds the fixed registry of agents known to the system.
// The registry is built once at startup and never mutated, so any number
// of request handlers may read it concurrently without locking.
package trust

import (
	"github.com/rs/zerolog"
)

// TrustLevelHigh is the only trust level assigned to the built-in agents.
const TrustLevelHigh = "high"

// Record describes one registered agent.
type Record struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	TrustLevel   string   `json:"trust_level"`
	Capabilities []string `json:"capabilities"`
}

// Registry answers trust and descriptive queries about known agents.
type Registry struct {
	agents map[string]Record
	logger zerolog.Logger
}

// New creates a Registry populated with the built-in agents.
func New(logger zerolog.Logger) *Registry {
	r := &Registry{
		agents: map[string]Record{
			"hawker": {
				ID:           "hawker",
				Name:         "Hawker Agent",
				Description:  "Provides information about hawker centers in Singapore",
				TrustLevel:   TrustLevelHigh,
				Capabilities: []string{"hawker_search", "food_recommendations"},
			},
			"psi": {
				ID:           "psi",
				Name:         "PSI Agent",
				Description:  "Provides Pollutant Standards Index information",
				TrustLevel:   TrustLevelHigh,
				Capabilities: []string{"psi_reading", "air_quality_advisory"},
			},
			"merlion": {
				ID:           "merlion",
				Name:         "Merlion Agent",
				Description:  "Provides tourist attractions and information",
				TrustLevel:   TrustLevelHigh,
				Capabilities: []string{"attraction_search", "tourist_information"},
			},
		},
		logger: logger.With().Str("component", "trust").Logger(),
	}
	r.logger.Info().Int("agents", len(r.agents)).Msg("trust registry initialized")
	return r
}

// IsTrusted reports whether id belongs to a registered agent.
func (r *Registry) IsTrusted(id string) bool {
	_, ok := r.agents[id]
	if ok {
		r.logger.Info().Str("agent", id).Msg("agent verified as trusted")
	} else {
		r.logger.Warn().Str("agent", id).Msg("agent not in trusted list")
	}
	return ok
}

// Info returns the record for id, or false if the agent is unknown.
func (r *Registry) Info(id string) (Record, bool) {
	rec, ok := r.agents[id]
	if !ok {
		return Record{}, false
	}
	return rec.clone(), true
}

// All returns a copy of the full registry. Mutating the returned map or
// its records does not affect the registry.
func (r *Registry) All() map[string]Record {
	out := make(map[string]Record, len(r.agents))
	for id, rec := range r.agents {
		out[id] = rec.clone()
	}
	return out
}

// HasCapability reports whether the agent id lists the given capability.
// Unknown agents have no capabilities.
func (r *Registry) HasCapability(id, capability string) bool {
	rec, ok := r.agents[id]
	if !ok {
		return false
	}
	for _, c := range rec.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// TrustLevel returns the trust level for id, or false if unknown.
func (r *Registry) TrustLevel(id string) (string, bool) {
	rec, ok := r.agents[id]
	if !ok {
		return "", false
	}
	return rec.TrustLevel, true
}

// Count returns the number of registered agents.
func (r *Registry) Count() int {
	return len(r.agents)
}

func (rec Record) clone() Record {
	out := rec
	out.Capabilities = append([]string(nil), rec.Capabilities...)
	return out
}
