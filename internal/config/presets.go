package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"stiff": {
		Axis: "vertical", Spacing: DefaultSpacing, Mass: DefaultMass, Dt: DefaultDt, Integrator: "euler",
		Settle: SpringConfig{Tension: 300, Friction: 34},
		Drag:   SpringConfig{Tension: 500, Friction: 40},
		Visual: VisualConfig{Lift: 6, ScaleDelta: 0.03, Shadow: 10},
	},
	"gentle": {
		Axis: "vertical", Spacing: DefaultSpacing, Mass: DefaultMass, Dt: DefaultDt, Integrator: "euler",
		Settle: SpringConfig{Tension: 120, Friction: 22},
		Drag:   SpringConfig{Tension: 220, Friction: 26},
		Visual: VisualConfig{Lift: 8, ScaleDelta: 0.05, Shadow: 16},
	},
	"wobbly": {
		Axis: "vertical", Spacing: DefaultSpacing, Mass: DefaultMass, Dt: DefaultDt, Integrator: "verlet",
		Settle: SpringConfig{Tension: 180, Friction: 12},
		Drag:   SpringConfig{Tension: 300, Friction: 20},
		Visual: VisualConfig{Lift: 10, ScaleDelta: 0.08, Shadow: 20},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	if c.Fallback == (ExtentConfig{}) {
		c.Fallback = ExtentConfig{Width: 100, Height: DefaultFallback}
	}
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
