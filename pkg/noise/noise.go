// Package noise provides the deterministic pseudo-random primitives used to
// perturb distance fields: a sine-based hash, trilinear value noise, fractal
// brownian motion, and cellular (Worley) noise.
package noise

import (
	"math"

	"github.com/bpodwinski/go-raymarch/pkg/core"
)

// latticeDot decorrelates integer lattice coordinates into a single seed
var latticeDot = core.NewVec3(1, 57, 113)

// Hash returns a deterministic pseudo-random value in [0,1) for a scalar seed.
// Not cryptographically meaningful, purely a visual decorrelation function.
func Hash(n float64) float64 {
	x := math.Sin(n) * 43758.5453
	return x - math.Floor(x)
}

// Hash3 returns a deterministic pseudo-random vector in [0,1)^3 for an
// integer lattice cell, used as the jittered feature point of that cell.
func Hash3(cell core.Vec3) core.Vec3 {
	n := cell.Dot(latticeDot)
	return core.NewVec3(Hash(n), Hash(n+57), Hash(n+113))
}

// Value returns trilinear value noise in approximately [0,1] for a 3D point.
// Lattice corner values come from Hash, blended with a Hermite fade.
func Value(p core.Vec3) float64 {
	cell := core.NewVec3(math.Floor(p.X), math.Floor(p.Y), math.Floor(p.Z))
	f := p.Subtract(cell)

	// Hermite fade: f*f*(3-2f) per component
	u := core.NewVec3(
		f.X*f.X*(3-2*f.X),
		f.Y*f.Y*(3-2*f.Y),
		f.Z*f.Z*(3-2*f.Z),
	)

	n := cell.Dot(latticeDot)
	return core.Lerp(
		core.Lerp(
			core.Lerp(Hash(n+0), Hash(n+1), u.X),
			core.Lerp(Hash(n+57), Hash(n+58), u.X), u.Y),
		core.Lerp(
			core.Lerp(Hash(n+113), Hash(n+114), u.X),
			core.Lerp(Hash(n+170), Hash(n+171), u.X), u.Y),
		u.Z)
}

// octaveRotation is a fixed orthonormal-ish rotation applied between FBM
// octaves to break up lattice alignment artifacts.
var octaveRotation = [3]core.Vec3{
	core.NewVec3(0.00, 0.80, 0.60),
	core.NewVec3(-0.80, 0.36, -0.48),
	core.NewVec3(-0.60, -0.48, 0.64),
}

func rotate(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		octaveRotation[0].Dot(v),
		octaveRotation[1].Dot(v),
		octaveRotation[2].Dot(v),
	)
}

// FBM returns fractal brownian motion: five octaves of value noise with
// halving amplitude and roughly doubling frequency per octave, normalized by
// the octave amplitude sum. Output is approximately [0,1].
func FBM(p core.Vec3) float64 {
	q := rotate(p)
	f := 0.0
	amplitude := 0.5
	sum := 0.0
	for octave := 0; octave < 5; octave++ {
		f += amplitude * Value(q)
		sum += amplitude
		amplitude *= 0.5
		// Slightly irregular frequency growth hides octave correlation
		q = rotate(q.Multiply(2.13))
	}
	return f / sum
}

// WorleyF1 returns the distance to the nearest jittered feature point over
// the 3x3x3 neighborhood of unit cells around p.
func WorleyF1(p core.Vec3) float64 {
	f1, _ := worley(p)
	return f1
}

// WorleyF2F1 returns the gap between the two nearest feature point distances,
// producing ridged cell-boundary patterning.
func WorleyF2F1(p core.Vec3) float64 {
	f1, f2 := worley(p)
	return f2 - f1
}

// worley computes the two smallest feature point distances (F1 <= F2)
func worley(p core.Vec3) (f1, f2 float64) {
	base := core.NewVec3(math.Floor(p.X), math.Floor(p.Y), math.Floor(p.Z))
	frac := p.Subtract(base)

	f1 = math.MaxFloat64
	f2 = math.MaxFloat64
	for dz := -1.0; dz <= 1; dz++ {
		for dy := -1.0; dy <= 1; dy++ {
			for dx := -1.0; dx <= 1; dx++ {
				neighbor := core.NewVec3(dx, dy, dz)
				feature := neighbor.Add(Hash3(base.Add(neighbor)))
				d := feature.Subtract(frac).Length()
				if d < f1 {
					f2 = f1
					f1 = d
				} else if d < f2 {
					f2 = d
				}
			}
		}
	}
	return f1, f2
}
