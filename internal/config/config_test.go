package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/voltlab/internal/circuit"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name != "basic" {
		t.Errorf("expected name basic, got %s", cfg.Name)
	}
	if len(cfg.Elements) == 0 {
		t.Error("default config should have elements")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netlist.yaml")

	cfg := &Config{
		Name: "divider",
		Elements: []ElementConfig{
			{Kind: "resistor", Label: "R1", Value: 50},
			{Kind: "current_source", Label: "I1", Value: 1.0},
		},
		Sweep: &SweepConfig{Element: "I1", From: 0, To: 2, Points: 10},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Name != cfg.Name {
		t.Errorf("name = %s, want %s", loaded.Name, cfg.Name)
	}
	if len(loaded.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(loaded.Elements))
	}
	if loaded.Elements[0].Value != 50 {
		t.Errorf("R1 value = %v, want 50", loaded.Elements[0].Value)
	}
	if loaded.Sweep == nil || loaded.Sweep.Points != 10 {
		t.Error("sweep block not preserved")
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuild(t *testing.T) {
	cfg := GetPreset("parallel")
	if cfg == nil {
		t.Fatal("expected parallel preset")
	}

	circ, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if circ.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", circ.Len())
	}

	elems := circ.Elements()
	if elems[0].Kind != circuit.Resistor || elems[0].Label != "R1" {
		t.Errorf("unexpected first element: %+v", elems[0])
	}
}

func TestBuild_UnknownKind(t *testing.T) {
	cfg := &Config{
		Name:     "bad",
		Elements: []ElementConfig{{Kind: "transistor", Label: "Q1", Value: 1}},
	}
	if _, err := cfg.Build(); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets()) == 0 {
		t.Error("expected presets")
	}
}
