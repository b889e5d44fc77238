package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/springlist/internal/engine"
)

const (
	DefaultSpacing  = 10.0
	DefaultMass     = 1.0
	DefaultDt       = 1.0 / 60.0
	DefaultItems    = 5
	DefaultFallback = 50.0
)

type SpringConfig struct {
	Tension  float64 `yaml:"tension"`
	Friction float64 `yaml:"friction"`
}

type VisualConfig struct {
	Lift       float64 `yaml:"lift"`
	ScaleDelta float64 `yaml:"scale_delta"`
	Shadow     float64 `yaml:"shadow"`
}

type ExtentConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Config struct {
	Axis       string       `yaml:"axis"`
	Spacing    float64      `yaml:"spacing"`
	Mass       float64      `yaml:"mass"`
	Dt         float64      `yaml:"dt"`
	Integrator string       `yaml:"integrator"`
	Settle     SpringConfig `yaml:"settle"`
	Drag       SpringConfig `yaml:"drag"`
	Visual     VisualConfig `yaml:"visual"`
	Fallback   ExtentConfig `yaml:"fallback_extent"`

	PositionEpsilon float64 `yaml:"position_epsilon"`
	VelocityEpsilon float64 `yaml:"velocity_epsilon"`
}

func DefaultConfig() *Config {
	return &Config{
		Axis:       "vertical",
		Spacing:    DefaultSpacing,
		Mass:       DefaultMass,
		Dt:         DefaultDt,
		Integrator: "euler",
		Settle:     SpringConfig{Tension: engine.DefaultSettleTension, Friction: engine.DefaultSettleFriction},
		Drag:       SpringConfig{Tension: engine.DefaultDragTension, Friction: engine.DefaultDragFriction},
		Visual: VisualConfig{
			Lift:       engine.DefaultLift,
			ScaleDelta: engine.DefaultScaleDelta,
			Shadow:     engine.DefaultShadow,
		},
		Fallback:        ExtentConfig{Width: 100, Height: DefaultFallback},
		PositionEpsilon: engine.DefaultPositionEpsilon,
		VelocityEpsilon: engine.DefaultVelocityEpsilon,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := c.ParseAxis(); err != nil {
		return err
	}
	if c.Spacing < 0 {
		return fmt.Errorf("spacing must be non-negative, got %f", c.Spacing)
	}
	if c.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %f", c.Mass)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Settle.Tension <= 0 || c.Settle.Friction <= 0 {
		return fmt.Errorf("settle spring constants must be positive")
	}
	if c.Drag.Tension <= 0 || c.Drag.Friction <= 0 {
		return fmt.Errorf("drag spring constants must be positive")
	}
	switch c.Integrator {
	case "euler", "verlet":
	default:
		return fmt.Errorf("unknown integrator %q", c.Integrator)
	}
	return nil
}

func (c *Config) ParseAxis() (engine.Axis, error) {
	switch c.Axis {
	case "", "vertical":
		return engine.AxisVertical, nil
	case "horizontal":
		return engine.AxisHorizontal, nil
	case "both":
		return engine.AxisBoth, nil
	default:
		return engine.AxisVertical, fmt.Errorf("unknown axis %q", c.Axis)
	}
}

// EngineOptions converts the config into engine options. The config
// must be validated first; an invalid axis falls back to vertical.
func (c *Config) EngineOptions() engine.Options {
	axis, _ := c.ParseAxis()
	opts := engine.DefaultOptions()
	opts.Spacing = c.Spacing
	opts.Axis = axis
	opts.Mass = c.Mass
	opts.Settle = engine.Spring{Tension: c.Settle.Tension, Friction: c.Settle.Friction}
	opts.Drag = engine.Spring{Tension: c.Drag.Tension, Friction: c.Drag.Friction}
	opts.Lift = c.Visual.Lift
	opts.ScaleDelta = c.Visual.ScaleDelta
	opts.Shadow = c.Visual.Shadow
	opts.FallbackExtent = engine.Extent{Width: c.Fallback.Width, Height: c.Fallback.Height}
	if c.PositionEpsilon > 0 {
		opts.PositionEpsilon = c.PositionEpsilon
	}
	if c.VelocityEpsilon > 0 {
		opts.VelocityEpsilon = c.VelocityEpsilon
	}
	return opts
}
