package scene

import (
	"fmt"

	"github.com/bpodwinski/go-raymarch/pkg/config"
	"github.com/bpodwinski/go-raymarch/pkg/core"
	"github.com/bpodwinski/go-raymarch/pkg/palette"
	"github.com/bpodwinski/go-raymarch/pkg/renderer"
	"github.com/bpodwinski/go-raymarch/pkg/sdf"
)

// Names lists the available scene variants in demo order
func Names() []string {
	return []string{"box", "sphere", "plasma", "fireball"}
}

// CreateScene builds a scene variant by name with the given tuning
func CreateScene(name string, cfg *config.Config) (renderer.Scene, error) {
	tuning, err := cfg.Scene(name)
	if err != nil {
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	switch name {
	case "box":
		return NewBoxScene(tuning), nil
	case "sphere":
		return NewSphereScene(tuning), nil
	case "plasma":
		return NewPlasmaScene(tuning), nil
	case "fireball":
		return NewFireballScene(tuning), nil
	default:
		// Tuning exists but no constructor: a wiring bug, not user error
		return nil, fmt.Errorf("scene %q has tuning but no constructor", name)
	}
}

// NewBoxScene is the collision overlay demo: a box tinted green, switching to
// red while the externally supplied collision flag is set.
func NewBoxScene(tuning config.SceneTuning) *HitScene {
	return &HitScene{
		pose: defaultPose(),
		background: gradient{
			top:    core.NewVec3(0.5, 0.7, 1.0),
			bottom: core.NewVec3(1.0, 1.0, 1.0),
		},
		field:         sdf.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)),
		cfg:           tuning.MarchConfig(),
		tint:          core.NewVec3(0.2, 1.0, 0.3),
		collisionTint: core.NewVec3(1.0, 0.2, 0.2),
		blend:         tuning.BlendFactor,
	}
}

// NewSphereScene is the glow overlay demo: a sphere with rim glow on near
// misses.
func NewSphereScene(tuning config.SceneTuning) *HitScene {
	return &HitScene{
		pose: defaultPose(),
		background: gradient{
			top:    core.NewVec3(0.5, 0.7, 1.0),
			bottom: core.NewVec3(1.0, 1.0, 1.0),
		},
		field:         sdf.NewSphere(core.NewVec3(0, 0, 0), 1.5),
		cfg:           tuning.MarchConfig(),
		tint:          core.NewVec3(0.3, 0.8, 1.0),
		collisionTint: core.NewVec3(1.0, 0.2, 0.2),
		blend:         tuning.BlendFactor,
		glowStrength:  tuning.GlowStrength,
	}
}

// NewPlasmaScene is the cellular plasma demo: a Worley-displaced sphere with
// the fire gradient palette.
func NewPlasmaScene(tuning config.SceneTuning) *VolumeScene {
	field := sdf.NewPlasmaSphere(core.NewVec3(0, 0, 0), 1.5)
	field.RadiusScale = tuning.RadiusScale
	field.Frequency = tuning.Frequency
	field.Amplitude = tuning.Amplitude
	field.FlowSpeed = tuning.FlowSpeed

	return &VolumeScene{
		pose: defaultPose(),
		background: gradient{
			top:    core.NewVec3(0.02, 0.02, 0.06),
			bottom: core.NewVec3(0.08, 0.04, 0.10),
		},
		field:   field,
		cfg:     tuning.MarchConfig(),
		palette: palette.Fire,
	}
}

// NewFireballScene is the volumetric fireball demo: an FBM-displaced sphere
// colored by the blackbody palette.
func NewFireballScene(tuning config.SceneTuning) *VolumeScene {
	field := sdf.NewFireSphere(core.NewVec3(0, 0, 0), 1.5)
	field.RadiusScale = tuning.RadiusScale
	field.Frequency = tuning.Frequency
	field.Amplitude = tuning.Amplitude
	field.FlowSpeed = tuning.FlowSpeed

	return &VolumeScene{
		pose: defaultPose(),
		background: gradient{
			top:    core.NewVec3(0.02, 0.02, 0.06),
			bottom: core.NewVec3(0.08, 0.04, 0.10),
		},
		field:   field,
		cfg:     tuning.MarchConfig(),
		palette: palette.Blackbody,
	}
}
