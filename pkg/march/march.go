// Package march implements sphere tracing against signed distance fields: a
// binary-hit variant for overlay effects and a density-accumulating variant
// for volumetric fire and plasma.
package march

import (
	"math"

	"github.com/bpodwinski/go-raymarch/pkg/core"
	"github.com/bpodwinski/go-raymarch/pkg/sdf"
)

// Config holds the tuning constants of a march. The demos use visibly ad hoc
// values that differ per primitive, so everything is a named parameter here
// rather than a constant in the loop.
type Config struct {
	HitEpsilon  float64 // distance below which the surface counts as hit
	MaxDistance float64 // traveled distance past which the march is a miss
	MaxSteps    int     // unconditional iteration cap
	MinStep     float64 // floor applied to each advance (0 disables)
	StepDamping float64 // advance multiplier <1 to control overshoot (0 means 1)

	// Volumetric accumulation only
	DensityThreshold float64 // distance h below which density accumulates
	DensityCap       float64 // headroom ceiling for the density accumulator
	Saturation       float64 // density level that ends the march early
}

// DefaultConfig returns the tuning used by the binary-hit overlay demos
func DefaultConfig() Config {
	return Config{
		HitEpsilon:  0.001,
		MaxDistance: 100,
		MaxSteps:    100,
		StepDamping: 1,
	}
}

// DefaultVolumeConfig returns the tuning used by the volumetric demos. The
// step floor and damping compensate for the displaced fields being only
// approximate SDFs.
func DefaultVolumeConfig() Config {
	return Config{
		HitEpsilon:       0.01,
		MaxDistance:      100,
		MaxSteps:         64,
		MinStep:          0.02,
		StepDamping:      0.9,
		DensityThreshold: 0.1,
		DensityCap:       2.0,
		Saturation:       1.5,
	}
}

// Result is the outcome of a binary-hit march. T is the traveled distance to
// the surface, or -1 on a miss. MinDistance is the closest the ray came to
// the surface, which drives rim glow on near misses.
type Result struct {
	Hit         bool
	T           float64
	MinDistance float64
	Steps       int
}

// VolumeResult is the outcome of a volumetric march. Density is the raw
// accumulator, Weight the color-weight accumulator consumed by the palette,
// and Alpha the coverage for compositing.
type VolumeResult struct {
	Density float64
	Weight  float64
	Alpha   float64
	Steps   int
}

// March walks the ray through the field by classic sphere tracing: each
// iteration advances by the locally evaluated distance. It terminates on a
// hit (distance below HitEpsilon), on a miss (traveled distance beyond
// MaxDistance or step budget exhausted), or immediately as a miss when the
// field produces NaN.
func March(ray core.Ray, field sdf.Field, time float64, cfg Config) Result {
	damping := cfg.StepDamping
	if damping <= 0 {
		damping = 1
	}

	t := 0.0
	closest := math.Inf(1)
	for step := 1; step <= cfg.MaxSteps; step++ {
		d := field.Distance(ray.At(t), time)
		if math.IsNaN(d) {
			return Result{Hit: false, T: -1, MinDistance: closest, Steps: step}
		}
		if d < closest {
			closest = d
		}
		if d < cfg.HitEpsilon {
			return Result{Hit: true, T: t, MinDistance: closest, Steps: step}
		}

		advance := d * damping
		if advance < cfg.MinStep {
			advance = cfg.MinStep
		}
		t += advance

		if t > cfg.MaxDistance {
			return Result{Hit: false, T: -1, MinDistance: closest, Steps: step}
		}
	}
	return Result{Hit: false, T: -1, MinDistance: closest, Steps: cfg.MaxSteps}
}

// MarchVolume walks the ray accumulating density wherever the field drops
// below DensityThreshold, a front-to-back integration that approximates
// participating media without physical light transport. Each local
// contribution (h - d) is weighted by the remaining headroom under
// DensityCap; the color-weight accumulator additionally favors samples close
// to the field core. The march ends when the density saturates, the ray
// leaves the range, or the step budget runs out. NaN samples zero the result
// so no NaN ever reaches the color output.
func MarchVolume(ray core.Ray, field sdf.Field, time float64, cfg Config) VolumeResult {
	damping := cfg.StepDamping
	if damping <= 0 {
		damping = 1
	}
	h := cfg.DensityThreshold

	t := 0.0
	td := 0.0
	tc := 0.0
	steps := 0
	for step := 1; step <= cfg.MaxSteps; step++ {
		steps = step
		d := field.Distance(ray.At(t), time)
		if math.IsNaN(d) {
			return VolumeResult{Steps: step}
		}

		if d < h {
			local := (h - d) * (cfg.DensityCap - td)
			if local > 0 {
				td += local
				tc += local * core.Clamp01(1-d/h)
			}
			if td > cfg.Saturation {
				break
			}
		}

		// The floor keeps t monotonic even where the displaced field goes
		// negative; without it the march would stall at the turbulent surface.
		advance := d * damping
		if advance < cfg.MinStep {
			advance = cfg.MinStep
		}
		if advance < 0 {
			advance = 0
		}
		t += advance

		if t > cfg.MaxDistance {
			break
		}
	}

	return VolumeResult{
		Density: td,
		Weight:  tc,
		Alpha:   core.Clamp01(td),
		Steps:   steps,
	}
}
