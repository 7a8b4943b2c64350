// Package camera reconstructs world-space rays from screen coordinates using
// the inverse projection and inverse view matrices of the hosting scene's
// camera.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/bpodwinski/go-raymarch/pkg/core"
)

// Frame is the immutable per-invocation camera parameter bundle: everything
// the per-pixel core needs from the hosting render loop for one frame.
type Frame struct {
	InvProjection mgl64.Mat4
	InvView       mgl64.Mat4
	Position      core.Vec3
	Near          float64
	Far           float64
	Width         int
	Height        int
	Time          float64 // elapsed seconds
}

// NewFrame builds a Frame from a camera pose and perspective parameters,
// inverting the projection and view matrices once up front.
func NewFrame(position, target, up core.Vec3, fovY float64, width, height int, near, far, time float64) Frame {
	aspect := float64(width) / float64(height)
	projection := mgl64.Perspective(fovY, aspect, near, far)
	view := mgl64.LookAtV(toMgl(position), toMgl(target), toMgl(up))

	return Frame{
		InvProjection: projection.Inv(),
		InvView:       view.Inv(),
		Position:      position,
		Near:          near,
		Far:           far,
		Width:         width,
		Height:        height,
		Time:          time,
	}
}

// Unproject converts a normalized screen coordinate (u,v in [0,1], v up) and
// a depth value in [0,1] to a world-space position. The depth is applied as a
// linear remap of the view-space position from [near,far]; that is not a
// perspective-correct unprojection, but only the ray direction is consumed
// downstream, which the remap preserves.
func (f Frame) Unproject(u, v, depth float64) core.Vec3 {
	ndc := mgl64.Vec4{2*u - 1, 2*v - 1, 0, 1}

	// No perspective divide: for a perspective projection the raw inverse
	// projected XYZ lands on the view-space z=-1 plane, so scaling it by the
	// remapped depth places it on the z=-depth plane directly.
	viewPos := f.InvProjection.Mul4x1(ndc).Vec3()
	scaled := viewPos.Mul(core.Lerp(f.Near, f.Far, depth))

	world := f.InvView.Mul4x1(scaled.Vec4(1))
	return core.NewVec3(world.X(), world.Y(), world.Z())
}

// RayAt returns the world-space ray through the pixel at normalized screen
// coordinate (u,v), anchored at the camera position.
func (f Frame) RayAt(u, v float64) core.Ray {
	farPoint := f.Unproject(u, v, 1.0)
	return core.NewRay(f.Position, farPoint.Subtract(f.Position))
}

// PixelUV converts integer pixel coordinates (y down, as in image.RGBA) to
// the pixel-centered normalized coordinates RayAt expects (v up).
func (f Frame) PixelUV(x, y int) (u, v float64) {
	u = (float64(x) + 0.5) / float64(f.Width)
	v = 1 - (float64(y)+0.5)/float64(f.Height)
	return u, v
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
