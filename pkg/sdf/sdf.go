// Package sdf provides signed distance fields for the primitives rendered by
// the demos: boxes, spheres, and noise-displaced spheres. All fields are pure
// functions of a query point; negative inside, zero on the surface, positive
// outside. NaN or Inf inputs propagate and are handled by the marcher.
package sdf

import (
	"math"

	"github.com/bpodwinski/go-raymarch/pkg/core"
)

// Field maps a world-space point to a signed distance to a surface. The time
// parameter drives animated fields; static fields ignore it.
type Field interface {
	Distance(p core.Vec3, time float64) float64
}

// FieldFunc adapts a plain function to the Field interface
type FieldFunc func(p core.Vec3, time float64) float64

// Distance calls the wrapped function
func (f FieldFunc) Distance(p core.Vec3, time float64) float64 {
	return f(p, time)
}

// Sphere is an exact sphere distance field
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a sphere field centered at center with the given radius
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Distance returns the signed distance from p to the sphere surface
func (s *Sphere) Distance(p core.Vec3, _ float64) float64 {
	return p.Subtract(s.Center).Length() - s.Radius
}

// Box is an exact axis-aligned box distance field
type Box struct {
	Center      core.Vec3
	HalfExtents core.Vec3
}

// NewBox creates a box field centered at center with the given half extents
func NewBox(center, halfExtents core.Vec3) *Box {
	return &Box{Center: center, HalfExtents: halfExtents}
}

// Distance returns the signed distance from p to the box surface, using the
// standard exterior/interior split: the exterior part is the length of the
// positive per-axis excess, the interior part the largest (negative) axis
// distance.
func (b *Box) Distance(p core.Vec3, _ float64) float64 {
	d := p.Subtract(b.Center).Abs().Subtract(b.HalfExtents)
	interior := math.Min(d.MaxComponent(), 0)
	exterior := d.MaxVec(0).Length()
	return interior + exterior
}
