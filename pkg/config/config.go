// Package config exposes the per-scene tuning constants of the demos as a
// TOML file. The observed in-demo values are the defaults; a user file
// overrides individual scene sections.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/bpodwinski/go-raymarch/pkg/march"
)

// SceneTuning holds every ad hoc constant of one demo variant: the march
// policy plus the field and compositing parameters.
type SceneTuning struct {
	// March policy
	HitEpsilon  float64 `toml:"hit_epsilon"`
	MaxDistance float64 `toml:"max_distance"`
	MaxSteps    int     `toml:"max_steps"`
	MinStep     float64 `toml:"min_step"`
	StepDamping float64 `toml:"step_damping"`

	// Volumetric accumulation
	DensityThreshold float64 `toml:"density_threshold"`
	DensityCap       float64 `toml:"density_cap"`
	Saturation       float64 `toml:"saturation"`

	// Displaced field shape
	RadiusScale float64 `toml:"radius_scale"`
	Frequency   float64 `toml:"frequency"`
	Amplitude   float64 `toml:"amplitude"`
	FlowSpeed   float64 `toml:"flow_speed"`

	// Compositing
	BlendFactor  float64 `toml:"blend_factor"`
	GlowStrength float64 `toml:"glow_strength"`
}

// MarchConfig converts the tuning to the marcher's configuration
func (s SceneTuning) MarchConfig() march.Config {
	return march.Config{
		HitEpsilon:       s.HitEpsilon,
		MaxDistance:      s.MaxDistance,
		MaxSteps:         s.MaxSteps,
		MinStep:          s.MinStep,
		StepDamping:      s.StepDamping,
		DensityThreshold: s.DensityThreshold,
		DensityCap:       s.DensityCap,
		Saturation:       s.Saturation,
	}
}

// Config is the full tuning file: one section per scene variant
type Config struct {
	Scenes map[string]SceneTuning `toml:"scenes"`
}

// Default returns the tuning observed in the original demos
func Default() *Config {
	return &Config{
		Scenes: map[string]SceneTuning{
			"box": {
				HitEpsilon:  0.1,
				MaxDistance: 100,
				MaxSteps:    32,
				StepDamping: 1,
				BlendFactor: 0.5,
			},
			"sphere": {
				HitEpsilon:   0.001,
				MaxDistance:  100,
				MaxSteps:     100,
				StepDamping:  1,
				BlendFactor:  0.3,
				GlowStrength: 4.0,
			},
			"plasma": {
				HitEpsilon:       0.01,
				MaxDistance:      100,
				MaxSteps:         64,
				MinStep:          0.02,
				StepDamping:      0.9,
				DensityThreshold: 0.1,
				DensityCap:       2.0,
				Saturation:       1.5,
				RadiusScale:      1.158,
				Frequency:        2.0,
				Amplitude:        0.1,
				FlowSpeed:        0.4,
			},
			"fireball": {
				HitEpsilon:       0.01,
				MaxDistance:      100,
				MaxSteps:         100,
				MinStep:          0.05,
				StepDamping:      0.8,
				DensityThreshold: 0.1,
				DensityCap:       2.0,
				Saturation:       2.0,
				RadiusScale:      0.8,
				Frequency:        3.4,
				Amplitude:        0.25,
				FlowSpeed:        0.6,
			},
		},
	}
}

// Load reads a TOML tuning file and overlays its scene sections on the
// defaults. Sections naming unknown scenes are rejected so typos do not
// silently fall back to default tuning.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tuning file: %w", err)
	}

	var overlay Config
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing tuning file %s: %w", path, err)
	}

	cfg := Default()
	for name, tuning := range overlay.Scenes {
		if _, known := cfg.Scenes[name]; !known {
			return nil, fmt.Errorf("tuning file %s: unknown scene %q", path, name)
		}
		cfg.Scenes[name] = tuning
	}
	return cfg, nil
}

// Scene returns the tuning for a named scene variant
func (c *Config) Scene(name string) (SceneTuning, error) {
	tuning, ok := c.Scenes[name]
	if !ok {
		return SceneTuning{}, fmt.Errorf("unknown scene %q", name)
	}
	return tuning, nil
}
