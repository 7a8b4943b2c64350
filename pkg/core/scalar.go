package core

import "math"

// Lerp returns the linear interpolation between a and b, with t clamped to [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// Clamp01 clamps x to the [0,1] range
func Clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// Smoothstep returns the Hermite interpolation of x between edge0 and edge1
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// IsFinite reports whether x is neither NaN nor infinite
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
