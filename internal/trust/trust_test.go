package trust

import (
	"testing"

	"github.com/rs/zerolog"
)

func newTestRegistry() *Registry {
	return New(zerolog.Nop())
}

func TestIsTrusted(t *testing.T) {
	r := newTestRegistry()

	for _, id := range []string{"hawker", "psi", "merlion"} {
		if !r.IsTrusted(id) {
			t.Errorf("IsTrusted(%q) = false, want true", id)
		}
	}

	for _, id := range []string{"", "unknown", "Hawker", "attacker"} {
		if r.IsTrusted(id) {
			t.Errorf("IsTrusted(%q) = true, want false", id)
		}
	}
}

func TestInfo(t *testing.T) {
	r := newTestRegistry()

	rec, ok := r.Info("hawker")
	if !ok {
		t.Fatal("Info(hawker) not found")
	}
	if rec.ID != "hawker" {
		t.Errorf("rec.ID = %q, want hawker", rec.ID)
	}
	if rec.TrustLevel != TrustLevelHigh {
		t.Errorf("rec.TrustLevel = %q, want %q", rec.TrustLevel, TrustLevelHigh)
	}
	if rec.Name != "Hawker Agent" {
		t.Errorf("rec.Name = %q, want Hawker Agent", rec.Name)
	}

	if _, ok := r.Info("nonexistent"); ok {
		t.Error("Info(nonexistent) found, want absent")
	}
}

func TestAllCopyIsolation(t *testing.T) {
	r := newTestRegistry()

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("All() returned %d entries, want 3", len(all))
	}

	// Mutate the returned copy every way a caller could.
	delete(all, "psi")
	rec := all["hawker"]
	rec.Capabilities[0] = "tampered"
	all["hawker"] = rec
	all["intruder"] = Record{ID: "intruder"}

	fresh := r.All()
	if len(fresh) != 3 {
		t.Fatalf("registry mutated through copy: %d entries", len(fresh))
	}
	if _, ok := fresh["intruder"]; ok {
		t.Error("registry accepted an entry added to a copy")
	}
	if fresh["hawker"].Capabilities[0] != "hawker_search" {
		t.Errorf("capability mutated through copy: %q", fresh["hawker"].Capabilities[0])
	}
}

func TestHasCapability(t *testing.T) {
	r := newTestRegistry()

	tests := []struct {
		id, capability string
		want           bool
	}{
		{"hawker", "hawker_search", true},
		{"hawker", "food_recommendations", true},
		{"hawker", "air_quality_advisory", false},
		{"psi", "psi_reading", true},
		{"merlion", "attraction_search", true},
		{"unknown", "hawker_search", false},
		{"unknown", "", false},
	}
	for _, tt := range tests {
		if got := r.HasCapability(tt.id, tt.capability); got != tt.want {
			t.Errorf("HasCapability(%q, %q) = %v, want %v", tt.id, tt.capability, got, tt.want)
		}
	}
}

func TestTrustLevel(t *testing.T) {
	r := newTestRegistry()

	for _, id := range []string{"hawker", "psi", "merlion"} {
		level, ok := r.TrustLevel(id)
		if !ok {
			t.Fatalf("TrustLevel(%q) absent", id)
		}
		if level != TrustLevelHigh {
			t.Errorf("TrustLevel(%q) = %q, want %q", id, level, TrustLevelHigh)
		}
	}

	if _, ok := r.TrustLevel("unknown"); ok {
		t.Error("TrustLevel(unknown) present, want absent")
	}
}

func TestCount(t *testing.T) {
	if got := newTestRegistry().Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}
