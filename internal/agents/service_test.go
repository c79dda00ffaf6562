package agents

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lion-city/sgagents/internal/trust"
)

func newTestService() *Service {
	return New(trust.New(zerolog.Nop()))
}

func TestIndex(t *testing.T) {
	idx := newTestService().Index()

	if idx.Message != "Singapore Multi-Agent System" {
		t.Errorf("message = %q", idx.Message)
	}
	if idx.Version != Version {
		t.Errorf("version = %q, want %q", idx.Version, Version)
	}
	if len(idx.Agents) != 3 {
		t.Errorf("agents = %d, want 3", len(idx.Agents))
	}
	if idx.Endpoints["hawker"] != "/api/hawker" {
		t.Errorf("hawker endpoint = %q", idx.Endpoints["hawker"])
	}
}

func TestSearchHawker(t *testing.T) {
	resp := newTestService().SearchHawker("chicken rice")

	if resp.Agent == nil || resp.Agent.ID != "hawker" {
		t.Fatalf("agent = %+v, want hawker record", resp.Agent)
	}
	if resp.Query != "chicken rice" {
		t.Errorf("query = %q", resp.Query)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(resp.Results))
	}
	if resp.Results[0].Name != "Maxwell Food Centre" {
		t.Errorf("results[0].name = %q", resp.Results[0].Name)
	}
	if resp.Message != "Found hawker centers matching: chicken rice" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestPSIReading(t *testing.T) {
	s := newTestService()
	s.now = func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	}

	resp := s.PSIReading(DefaultLocation)

	if resp.Agent == nil || resp.Agent.ID != "psi" {
		t.Fatalf("agent = %+v, want psi record", resp.Agent)
	}
	if resp.Location != "national" {
		t.Errorf("location = %q", resp.Location)
	}
	if resp.Timestamp != "2026-08-29T12:00:00Z" {
		t.Errorf("timestamp = %q", resp.Timestamp)
	}
	if resp.PSIReadings["national"] != 46 {
		t.Errorf("national reading = %d, want 46", resp.PSIReadings["national"])
	}
	if resp.PSIReadings["west"] != 50 {
		t.Errorf("west reading = %d, want 50", resp.PSIReadings["west"])
	}
	if resp.AirQuality != "Good" {
		t.Errorf("air_quality = %q", resp.AirQuality)
	}
}

func TestAttractionsAll(t *testing.T) {
	resp := newTestService().Attractions(CategoryAll)

	if resp.Agent == nil || resp.Agent.ID != "merlion" {
		t.Fatalf("agent = %+v, want merlion record", resp.Agent)
	}
	if len(resp.Attractions) != 3 {
		t.Fatalf("categories = %d, want 3", len(resp.Attractions))
	}
	if len(resp.Attractions["nature"]) != 2 {
		t.Errorf("nature entries = %d, want 2", len(resp.Attractions["nature"]))
	}
}

func TestAttractionsFiltered(t *testing.T) {
	resp := newTestService().Attractions("nature")

	if len(resp.Attractions) != 1 {
		t.Fatalf("categories = %d, want only nature", len(resp.Attractions))
	}
	entries, ok := resp.Attractions["nature"]
	if !ok {
		t.Fatal("nature key missing")
	}
	if entries[0].Name != "Gardens by the Bay" {
		t.Errorf("entries[0].name = %q", entries[0].Name)
	}
	if resp.Category != "nature" {
		t.Errorf("category = %q", resp.Category)
	}
}

func TestAttractionsUnknownCategory(t *testing.T) {
	resp := newTestService().Attractions("beaches")

	entries, ok := resp.Attractions["beaches"]
	if !ok {
		t.Fatal("unknown category should still appear as a key")
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want 0", len(entries))
	}
}
