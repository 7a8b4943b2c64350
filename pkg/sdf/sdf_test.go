package sdf

import (
	"math"
	"testing"

	"github.com/bpodwinski/go-raymarch/pkg/core"
)

func TestSphere_Distance(t *testing.T) {
	center := core.NewVec3(1, 2, 3)
	sphere := NewSphere(center, 2.0)

	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{
			name:     "center is inside by exactly the radius",
			point:    center,
			expected: -2.0,
		},
		{
			name:     "surface point yields zero",
			point:    center.Add(core.NewVec3(2, 0, 0)),
			expected: 0.0,
		},
		{
			name:     "diagonal surface point yields zero",
			point:    center.Add(core.NewVec3(1, 1, 1).Normalize().Multiply(2)),
			expected: 0.0,
		},
		{
			name:     "outside point yields positive distance",
			point:    center.Add(core.NewVec3(0, 5, 0)),
			expected: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sphere.Distance(tt.point, 0)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestBox_Distance_Signs(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))

	outside := []core.Vec3{
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, -3, 0),
		core.NewVec3(1.5, 1.5, 1.5),
		core.NewVec3(-2, 2, -2),
	}
	for _, p := range outside {
		if d := box.Distance(p, 0); d < 0 {
			t.Errorf("Expected non-negative distance outside box at %v, got %f", p, d)
		}
	}

	inside := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(0.5, 0.5, 0.5),
		core.NewVec3(-0.9, 0.1, 0.9),
	}
	for _, p := range inside {
		if d := box.Distance(p, 0); d > 0 {
			t.Errorf("Expected non-positive distance inside box at %v, got %f", p, d)
		}
	}
}

func TestBox_Distance_Values(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{
			name:     "center is innermost face distance",
			point:    core.NewVec3(0, 0, 0),
			expected: -1.0,
		},
		{
			name:     "face point yields zero",
			point:    core.NewVec3(1, 0, 0),
			expected: 0.0,
		},
		{
			name:     "one unit past a face",
			point:    core.NewVec3(2, 0, 0),
			expected: 1.0,
		},
		{
			name:     "corner distance is euclidean",
			point:    core.NewVec3(2, 2, 2),
			expected: math.Sqrt(3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := box.Distance(tt.point, 0)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestBox_Distance_OffCenter(t *testing.T) {
	box := NewBox(core.NewVec3(5, 0, 0), core.NewVec3(1, 2, 3))

	if d := box.Distance(core.NewVec3(5, 0, 0), 0); math.Abs(d-(-1.0)) > 1e-9 {
		t.Errorf("Expected center distance -1 (closest face), got %f", d)
	}
	if d := box.Distance(core.NewVec3(7, 0, 0), 0); math.Abs(d-1.0) > 1e-9 {
		t.Errorf("Expected distance 1 past +X face, got %f", d)
	}
}

func TestDisplacedSphere_BoundedByAmplitude(t *testing.T) {
	field := NewFireSphere(core.NewVec3(0, 0, 0), 1.0)

	// Displacement is a weighted noise value in [0, Amplitude], so the field
	// can deviate from the scaled base sphere by at most Amplitude.
	points := []core.Vec3{
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 1.5, 0.5),
		core.NewVec3(-0.3, 0.2, 0.9),
	}
	for _, p := range points {
		base := p.Length() - field.Radius*field.RadiusScale
		got := field.Distance(p, 1.25)
		if got < base-1e-9 || got > base+field.Amplitude+1e-9 {
			t.Errorf("Displacement out of bounds at %v: base %f, got %f", p, base, got)
		}
	}
}

func TestDisplacedSphere_TimeVaries(t *testing.T) {
	field := NewPlasmaSphere(core.NewVec3(0, 0, 0), 1.0)
	p := core.NewVec3(0.9, 0.4, 0.2)

	d0 := field.Distance(p, 0)
	d1 := field.Distance(p, 2.5)
	if d0 == d1 {
		t.Error("Expected time-varying field to change between samples")
	}

	// Same time must give bit-identical results
	if field.Distance(p, 2.5) != d1 {
		t.Error("Expected identical inputs to yield identical distances")
	}
}

func TestFieldDistance_NaNPropagates(t *testing.T) {
	fields := []Field{
		NewSphere(core.NewVec3(0, 0, 0), 1),
		NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)),
		NewFireSphere(core.NewVec3(0, 0, 0), 1),
	}

	nanPoint := core.NewVec3(math.NaN(), 0, 0)
	for _, field := range fields {
		if d := field.Distance(nanPoint, 0); !math.IsNaN(d) {
			t.Errorf("Expected NaN input to propagate, got %f from %T", d, field)
		}
	}
}
