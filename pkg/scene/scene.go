// Package scene assembles the demo variants: one distance field wired to one
// accumulation policy with the tuning observed in the original demos.
package scene

import (
	"math"

	"github.com/bpodwinski/go-raymarch/pkg/camera"
	"github.com/bpodwinski/go-raymarch/pkg/core"
	"github.com/bpodwinski/go-raymarch/pkg/march"
	"github.com/bpodwinski/go-raymarch/pkg/palette"
	"github.com/bpodwinski/go-raymarch/pkg/renderer"
	"github.com/bpodwinski/go-raymarch/pkg/sdf"
)

// Pose holds the camera placement shared by all scene variants
type Pose struct {
	Position core.Vec3
	Target   core.Vec3
	Up       core.Vec3
	FOV      float64
	Near     float64
	Far      float64
}

func defaultPose() Pose {
	return Pose{
		Position: core.NewVec3(0, 1.5, 7),
		Target:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		FOV:      math.Pi / 3,
		Near:     0.1,
		Far:      100,
	}
}

// gradient is the vertical two-color background used by every scene
type gradient struct {
	top    core.Vec3
	bottom core.Vec3
}

func (g gradient) at(ray core.Ray) core.Vec3 {
	// Map direction Y from [-1,1] to [0,1]
	t := 0.5 * (ray.Direction.Y + 1.0)
	return g.bottom.Multiply(1.0 - t).Add(g.top.Multiply(t))
}

// HitScene overlays a tint wherever the march hits the field. An externally
// supplied collision flag switches the tint, and near misses can add rim glow.
type HitScene struct {
	pose          Pose
	background    gradient
	field         sdf.Field
	cfg           march.Config
	tint          core.Vec3
	collisionTint core.Vec3
	colliding     bool
	blend         float64
	glowStrength  float64
}

// SetColliding updates the externally computed collision state for the next
// frame; the hosting application derives it from mesh intersection testing.
func (s *HitScene) SetColliding(colliding bool) {
	s.colliding = colliding
}

// Frame returns the camera frame for this scene at the given time
func (s *HitScene) Frame(width, height int, time float64) camera.Frame {
	return camera.NewFrame(s.pose.Position, s.pose.Target, s.pose.Up,
		s.pose.FOV, width, height, s.pose.Near, s.pose.Far, time)
}

// Background returns the base scene color for a ray
func (s *HitScene) Background(ray core.Ray) core.Vec3 {
	return s.background.at(ray)
}

// Shade marches the ray and overlays the tint on a hit
func (s *HitScene) Shade(base core.Vec3, ray core.Ray, time float64) renderer.ShadeResult {
	result := march.March(ray, s.field, time, s.cfg)

	if result.Hit {
		tint := s.tint
		if s.colliding {
			tint = s.collisionTint
		}
		return renderer.ShadeResult{
			Color: palette.OverlayHit(base, tint, s.blend),
			Steps: result.Steps,
			Hit:   true,
		}
	}

	if s.glowStrength > 0 && core.IsFinite(result.MinDistance) {
		glow := math.Exp(-result.MinDistance * s.glowStrength)
		return renderer.ShadeResult{
			Color: palette.OverlayHit(base, s.tint, s.blend*glow),
			Steps: result.Steps,
		}
	}

	return renderer.ShadeResult{Color: base, Steps: result.Steps}
}

// VolumeScene accumulates density through the field and composites a palette
// color weighted by the accumulated coverage.
type VolumeScene struct {
	pose       Pose
	background gradient
	field      sdf.Field
	cfg        march.Config
	palette    func(float64) core.Vec3
}

// Frame returns the camera frame for this scene at the given time
func (s *VolumeScene) Frame(width, height int, time float64) camera.Frame {
	return camera.NewFrame(s.pose.Position, s.pose.Target, s.pose.Up,
		s.pose.FOV, width, height, s.pose.Near, s.pose.Far, time)
}

// Background returns the base scene color for a ray
func (s *VolumeScene) Background(ray core.Ray) core.Vec3 {
	return s.background.at(ray)
}

// Shade integrates density along the ray and blends the palette color over
// the base by the accumulated coverage. Rays that never graze the field pass
// the base color through untouched.
func (s *VolumeScene) Shade(base core.Vec3, ray core.Ray, time float64) renderer.ShadeResult {
	result := march.MarchVolume(ray, s.field, time, s.cfg)

	if result.Alpha <= 0 {
		return renderer.ShadeResult{Color: base, Steps: result.Steps}
	}

	intensity := core.Clamp01(result.Weight / s.cfg.Saturation)
	color := s.palette(intensity)

	return renderer.ShadeResult{
		Color: palette.BlendVolume(base, color, result.Alpha),
		Steps: result.Steps,
		Hit:   true,
	}
}
