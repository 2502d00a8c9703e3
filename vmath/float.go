package vmath

import "math"

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates a..b by t without clamping
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Normalize returns the unit vector of (x, y), or zero for a zero vector
func Normalize(x, y float64) (float64, float64, bool) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0, false
	}
	return x / l, y / l, true
}
