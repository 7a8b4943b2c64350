package palette

import (
	"math"
	"testing"

	"github.com/bpodwinski/go-raymarch/pkg/core"
)

func TestFire_Endpoints(t *testing.T) {
	cold := Fire(0)
	if cold.Subtract(fireGray).Length() > 1e-9 {
		t.Errorf("Expected gray at d=0, got %v", cold)
	}

	hot := Fire(1)
	if hot.Subtract(fireYellow).Length() > 1e-9 {
		t.Errorf("Expected yellow at d=1, got %v", hot)
	}

	// Out-of-range input clamps to the endpoints
	if Fire(-5) != Fire(0) {
		t.Error("Expected d<0 to clamp to the cold end")
	}
	if Fire(7) != Fire(1) {
		t.Error("Expected d>1 to clamp to the hot end")
	}
}

func TestFire_SegmentBoundariesContinuous(t *testing.T) {
	// The gradient is piecewise linear; the segments must join without jumps.
	for _, boundary := range []float64{0.25, 0.5, 0.75} {
		below := Fire(boundary - 1e-9)
		at := Fire(boundary)
		if below.Subtract(at).Length() > 1e-6 {
			t.Errorf("Discontinuity at %f: %v vs %v", boundary, below, at)
		}
	}
}

func TestBlackbody_Bounds(t *testing.T) {
	for i := 0.0; i <= 1.0; i += 0.05 {
		c := Blackbody(i)
		for _, ch := range []float64{c.X, c.Y, c.Z} {
			if ch < 0 || ch > 1 {
				t.Errorf("Blackbody(%f) channel out of [0,1]: %v", i, c)
			}
			if math.IsNaN(ch) {
				t.Errorf("Blackbody(%f) produced NaN", i)
			}
		}
	}

	if Blackbody(0) != core.NewVec3(0, 0, 0) {
		t.Error("Expected black at zero intensity")
	}
}

func TestBlackbody_FireHueOrdering(t *testing.T) {
	// Thermal radiation at these temperatures is red-dominant
	for _, i := range []float64{0.1, 0.4, 0.7, 1.0} {
		c := Blackbody(i)
		if !(c.X >= c.Y && c.Y >= c.Z) {
			t.Errorf("Expected R >= G >= B at intensity %f, got %v", i, c)
		}
	}
}

func TestBlackbody_MonotonicBrightness(t *testing.T) {
	prev := -1.0
	for i := 0.0; i <= 1.0; i += 0.02 {
		lum := Blackbody(i).Dot(core.NewVec3(1, 1, 1))
		if lum < prev-1e-9 {
			t.Errorf("Brightness decreased at intensity %f", i)
		}
		prev = lum
	}
}

func TestOverlayHit(t *testing.T) {
	base := core.NewVec3(0.2, 0.4, 0.6)
	tint := core.NewVec3(1, 0, 0)

	blended := OverlayHit(base, tint, 0.5)
	expected := core.NewVec3(0.6, 0.2, 0.3)
	if blended.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, blended)
	}

	if OverlayHit(base, tint, 0) != base {
		t.Error("Expected zero blend to pass base through")
	}
}

func TestBlendVolume(t *testing.T) {
	base := core.NewVec3(0.1, 0.1, 0.1)
	vol := core.NewVec3(1, 0.5, 0)

	if BlendVolume(base, vol, 0) != base {
		t.Error("Expected alpha 0 to pass base through unchanged")
	}
	if BlendVolume(base, vol, 1).Subtract(vol).Length() > 1e-9 {
		t.Error("Expected alpha 1 to fully replace base")
	}
	// Alpha above 1 clamps rather than over-blending
	if BlendVolume(base, vol, 5).Subtract(vol).Length() > 1e-9 {
		t.Error("Expected alpha above 1 to clamp")
	}
}
