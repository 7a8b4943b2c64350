package noise

import (
	"math"
	"testing"

	"github.com/bpodwinski/go-raymarch/pkg/core"
)

func TestHash_Deterministic(t *testing.T) {
	seeds := []float64{0, 1, 57, 113.5, -42.25, 1e6}
	for _, seed := range seeds {
		first := Hash(seed)
		for i := 0; i < 10; i++ {
			if got := Hash(seed); got != first {
				t.Fatalf("Hash(%f) not deterministic: %v != %v", seed, got, first)
			}
		}
		if first < 0 || first >= 1 {
			t.Errorf("Hash(%f) = %f, expected [0,1)", seed, first)
		}
	}
}

func TestHash3_Deterministic(t *testing.T) {
	cell := core.NewVec3(3, -7, 12)
	first := Hash3(cell)
	for i := 0; i < 10; i++ {
		if got := Hash3(cell); got != first {
			t.Fatalf("Hash3 not deterministic: %v != %v", got, first)
		}
	}
}

func TestValue_RangeAndDeterminism(t *testing.T) {
	points := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(0.5, 0.5, 0.5),
		core.NewVec3(1.7, -3.2, 8.9),
		core.NewVec3(-12.4, 55.1, -0.01),
	}

	for _, p := range points {
		v := Value(p)
		if v != Value(p) {
			t.Errorf("Value(%v) not deterministic", p)
		}
		// Trilinear blend of hash values stays within the hash range
		if v < 0 || v > 1 {
			t.Errorf("Value(%v) = %f, expected [0,1]", p, v)
		}
	}
}

func TestValue_MatchesCornerHashAtLatticePoints(t *testing.T) {
	// At integer lattice points the fade weights are zero, so the noise
	// must equal the hash of that corner exactly.
	p := core.NewVec3(2, 5, -3)
	expected := Hash(p.Dot(core.NewVec3(1, 57, 113)))
	if got := Value(p); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected corner hash %f, got %f", expected, got)
	}
}

func TestFBM_RangeAndDeterminism(t *testing.T) {
	points := []core.Vec3{
		core.NewVec3(0.3, 0.3, 0.3),
		core.NewVec3(-5.5, 2.2, 7.7),
		core.NewVec3(100, -100, 0.5),
	}

	for _, p := range points {
		v := FBM(p)
		if v != FBM(p) {
			t.Errorf("FBM(%v) not deterministic", p)
		}
		// Normalized by the octave amplitude sum
		if v < 0 || v > 1.0+1e-9 {
			t.Errorf("FBM(%v) = %f, expected [0,1]", p, v)
		}
	}
}

func TestWorley_Bounds(t *testing.T) {
	points := []core.Vec3{
		core.NewVec3(0.1, 0.9, 0.5),
		core.NewVec3(4.2, -1.3, 6.6),
		core.NewVec3(-20.7, 13.1, 2.4),
	}

	for _, p := range points {
		f1 := WorleyF1(p)
		gap := WorleyF2F1(p)

		if f1 < 0 {
			t.Errorf("WorleyF1(%v) = %f, expected >= 0", p, f1)
		}
		// A feature point always exists within the 3x3x3 neighborhood
		if f1 > 2*math.Sqrt(3) {
			t.Errorf("WorleyF1(%v) = %f, exceeds neighborhood diameter", p, f1)
		}
		if gap < 0 {
			t.Errorf("WorleyF2F1(%v) = %f, expected F2 >= F1", p, gap)
		}
		if f1 != WorleyF1(p) || gap != WorleyF2F1(p) {
			t.Errorf("Worley not deterministic at %v", p)
		}
	}
}
