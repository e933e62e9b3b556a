package scenario

import (
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/san-kum/plasmalab/internal/quantity"
)

func TestDefault(t *testing.T) {
	sc := Default()

	if sc.Name != "corona" {
		t.Errorf("expected corona, got %s", sc.Name)
	}
	if sc.Temperature <= 0 {
		t.Error("temperature should be positive")
	}
	if sc.Density <= 0 {
		t.Error("density should be positive")
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("default scenario should validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	sc := GetPreset("solar_wind")
	if sc == nil {
		t.Fatal("expected preset, got nil")
	}
	if sc.Temperature != 6e5 {
		t.Errorf("expected temperature 6e5, got %g", sc.Temperature)
	}
	if sc.Density != 25 {
		t.Errorf("expected density 25, got %g", sc.Density)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetCloneIsolated(t *testing.T) {
	a := GetPreset("corona")
	a.Temperature = 5
	a.Species[0] = "alpha"

	b := GetPreset("corona")
	if b.Temperature != 1e6 {
		t.Error("preset mutated through clone")
	}
	if b.Species[0] != "e-" {
		t.Error("preset species mutated through clone")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) < 2 {
		t.Fatalf("expected at least corona and solar_wind, got %v", names)
	}
	sort.Strings(names)
	found := 0
	for _, n := range names {
		if n == "corona" || n == "solar_wind" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("expected corona and solar_wind in %v", names)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"negative temperature", func(s *Scenario) { s.Temperature = -1 }},
		{"zero density", func(s *Scenario) { s.Density = 0 }},
		{"negative field", func(s *Scenario) { s.Field = -1 }},
		{"one species", func(s *Scenario) { s.Species = []string{"e-"} }},
		{"unknown species", func(s *Scenario) { s.Species = []string{"e-", "Fe9+"} }},
	}

	for _, tt := range tests {
		sc := Default()
		tt.mutate(sc)
		if err := sc.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}

	sc := Default()
	sc.Temperature = -1
	if err := sc.Validate(); !errors.Is(err, quantity.ErrNonPhysical) {
		t.Errorf("expected ErrNonPhysical, got %v", err)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	sc := GetPreset("solar_wind")
	if err := Save(path, sc); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Name != sc.Name {
		t.Errorf("expected name %s, got %s", sc.Name, loaded.Name)
	}
	if loaded.Temperature != sc.Temperature {
		t.Errorf("expected temperature %g, got %g", sc.Temperature, loaded.Temperature)
	}
	if len(loaded.Species) != 2 || loaded.Species[1] != "p+" {
		t.Errorf("species did not round trip: %v", loaded.Species)
	}
}

func TestQuantityAccessors(t *testing.T) {
	sc := Default()

	if sc.TemperatureQ().Dim != quantity.Temperature {
		t.Error("temperature accessor has wrong dimension")
	}
	if sc.DensityQ().Val != 1e15 {
		t.Errorf("expected 1e15 m^-3, got %g", sc.DensityQ().Val)
	}
	if sc.FieldQ().Val != 1e-3 {
		t.Errorf("expected 1e-3 T, got %g", sc.FieldQ().Val)
	}
}
