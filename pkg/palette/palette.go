// Package palette maps marcher output to color contributions and composites
// them over the base scene color.
package palette

import (
	"math"

	"github.com/bpodwinski/go-raymarch/pkg/core"
)

// Fire palette stops. The hot end deliberately has components above 1 so the
// brightest regions saturate after compositing.
var (
	fireGray     = core.NewVec3(0.4, 0.4, 0.4)
	fireDarkGray = core.NewVec3(0.2, 0.2, 0.2)
	fireRed      = core.NewVec3(1.0, 0.0, 0.0)
	fireOrange   = core.NewVec3(1.0, 0.6, 0.0)
	fireYellow   = core.NewVec3(1.7, 1.3, 1.0)
)

// Fire maps d in [0,1] through the linear-segment gray/red/orange/yellow
// gradient used by the plasma demo. Input outside [0,1] is clamped.
func Fire(d float64) core.Vec3 {
	x := core.Clamp01(d)
	switch {
	case x < 0.25:
		return fireGray.Lerp(fireDarkGray, x*4)
	case x < 0.5:
		return fireDarkGray.Lerp(fireRed, x*4-1)
	case x < 0.75:
		return fireRed.Lerp(fireOrange, x*4-2)
	default:
		return fireOrange.Lerp(fireYellow, x*4-3)
	}
}

// Blackbody temperature mapping and spectral response constants. Wavelengths
// are in meters; planckC is the second radiation constant h*c/kB in m·K.
const (
	blackbodyBaseTemp  = 1400.0
	blackbodyTempRange = 1200.0

	waveRed   = 700e-9
	waveGreen = 546e-9
	waveBlue  = 436e-9
	planckC   = 1.4388e-2
)

// planck returns the (unnormalized) Planck-law spectral response of a
// blackbody at the given temperature and wavelength.
func planck(temp, wavelength float64) float64 {
	return 1.0 / (math.Exp(planckC/(temp*wavelength)) - 1.0)
}

// Blackbody maps a normalized intensity to the RGB of thermal radiation. The
// intensity is remapped non-linearly to an apparent temperature between 1400K
// and 2600K; the channel balance comes from the Planck response at the three
// primaries, and an inverse exponential falloff bounds brightness to [0,1].
func Blackbody(intensity float64) core.Vec3 {
	i := core.Clamp01(intensity)
	if i == 0 {
		return core.NewVec3(0, 0, 0)
	}

	temp := blackbodyBaseTemp + blackbodyTempRange*math.Pow(i, 1.5)

	r := planck(temp, waveRed)
	g := planck(temp, waveGreen)
	b := planck(temp, waveBlue)

	brightness := 1.0 - math.Exp(-3.0*i)
	return core.NewVec3(1, g/r, b/r).Multiply(brightness).Clamp(0, 1)
}

// OverlayHit blends a tint over the base scene color with a fixed blend
// factor, the compositing used by the binary-hit demos.
func OverlayHit(base, tint core.Vec3, blend float64) core.Vec3 {
	return base.Lerp(tint, blend)
}

// BlendVolume composites a volumetric color over the base scene color using
// the accumulated density as coverage.
func BlendVolume(base, volumetric core.Vec3, alpha float64) core.Vec3 {
	return base.Lerp(volumetric, core.Clamp01(alpha))
}
