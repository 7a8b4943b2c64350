package sdf

import (
	"github.com/bpodwinski/go-raymarch/pkg/core"
	"github.com/bpodwinski/go-raymarch/pkg/noise"
)

// NoiseFunc samples a scalar noise field at a point
type NoiseFunc func(p core.Vec3) float64

// DisplacedSphere is a sphere whose surface is perturbed by a time-varying
// noise field, producing turbulent fire or plasma shapes. The base radius is
// reduced by RadiusScale and the noise displacement pulls the surface inward
// by up to Amplitude.
//
// The result is only an approximate SDF: displacement steeper than the local
// Lipschitz bound can make the marcher overshoot. Keeping Amplitude small
// relative to the marcher's minimum step is the tuning knob for that.
type DisplacedSphere struct {
	Center      core.Vec3
	Radius      float64
	RadiusScale float64   // base radius multiplier, observed 0.5-1.158
	Frequency   float64   // noise domain scale
	Amplitude   float64   // displacement weight, observed 0.05-0.25
	FlowSpeed   float64   // how fast the noise domain drifts with time
	RadialFlow  bool      // drift along the radial direction instead of up
	Noise       NoiseFunc // defaults to FBM when nil
}

// NewFireSphere creates a displaced sphere tuned like the fireball demo:
// FBM displacement drifting upward over time.
func NewFireSphere(center core.Vec3, radius float64) *DisplacedSphere {
	return &DisplacedSphere{
		Center:      center,
		Radius:      radius,
		RadiusScale: 0.8,
		Frequency:   3.4,
		Amplitude:   0.25,
		FlowSpeed:   0.6,
		Noise:       noise.FBM,
	}
}

// NewPlasmaSphere creates a displaced sphere tuned like the plasma demo:
// cellular F2-F1 displacement flowing along the radial direction.
func NewPlasmaSphere(center core.Vec3, radius float64) *DisplacedSphere {
	return &DisplacedSphere{
		Center:      center,
		Radius:      radius,
		RadiusScale: 1.158,
		Frequency:   2.0,
		Amplitude:   0.1,
		FlowSpeed:   0.4,
		RadialFlow:  true,
		Noise:       noise.WorleyF2F1,
	}
}

// Distance returns the signed distance from p to the displaced surface
func (d *DisplacedSphere) Distance(p core.Vec3, time float64) float64 {
	offset := p.Subtract(d.Center)

	q := offset.Multiply(d.Frequency)
	if d.RadialFlow {
		q = q.Subtract(offset.Normalize().Multiply(time * d.FlowSpeed))
	} else {
		q = q.Add(core.NewVec3(0, -time*d.FlowSpeed, 0))
	}

	noiseFn := d.Noise
	if noiseFn == nil {
		noiseFn = noise.FBM
	}
	displacement := d.Amplitude * noiseFn(q)

	return offset.Length() - d.Radius*d.RadiusScale + displacement
}
