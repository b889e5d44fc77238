package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/springlist/internal/engine"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Axis != "vertical" {
		t.Errorf("expected axis vertical, got %s", cfg.Axis)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config valid, got %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad axis", func(c *Config) { c.Axis = "diagonal" }},
		{"negative spacing", func(c *Config) { c.Spacing = -1 }},
		{"zero mass", func(c *Config) { c.Mass = 0 }},
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"zero settle tension", func(c *Config) { c.Settle.Tension = 0 }},
		{"zero drag friction", func(c *Config) { c.Drag.Friction = 0 }},
		{"bad integrator", func(c *Config) { c.Integrator = "rk4" }},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("stiff")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Settle.Tension != 300 {
		t.Errorf("expected settle tension 300, got %f", cfg.Settle.Tension)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected preset valid, got %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	found := false
	for _, n := range names {
		if n == "wobbly" {
			found = true
		}
	}
	if !found {
		t.Error("expected wobbly preset in list")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Axis = "horizontal"
	cfg.Settle.Tension = 222

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Axis != "horizontal" {
		t.Errorf("expected axis horizontal, got %s", loaded.Axis)
	}
	if loaded.Settle.Tension != 222 {
		t.Errorf("expected settle tension 222, got %f", loaded.Settle.Tension)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Axis = "horizontal"
	cfg.Spacing = 4

	opts := cfg.EngineOptions()
	if opts.Axis != engine.AxisHorizontal {
		t.Errorf("expected horizontal axis, got %v", opts.Axis)
	}
	if opts.Spacing != 4 {
		t.Errorf("expected spacing 4, got %f", opts.Spacing)
	}
	if opts.PositionEpsilon <= 0 {
		t.Error("expected positive position epsilon")
	}
}

func TestPresetEpsilonBackfill(t *testing.T) {
	cfg := GetPreset("gentle")
	opts := cfg.EngineOptions()
	if opts.PositionEpsilon != engine.DefaultPositionEpsilon {
		t.Errorf("expected backfilled epsilon, got %f", opts.PositionEpsilon)
	}
}
