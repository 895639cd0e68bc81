package tube

import "math"

// Epsilon is the universal numerical-equality tolerance used throughout this
// module: two doubles a, b are considered equal iff |a-b| < Epsilon.
// Floating-point rounding at this scale is the dominant correctness lever in
// the envelope builder and loop remover, so every approximate-equality test
// in this module goes through Equal/Sign rather than rolling its own;
// ordering comparisons (<, >) are plain.
const Epsilon = 1e-10

// Equal reports whether a and b are equal within [Epsilon].
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Sign returns +1, 0 or -1 according to the strict sign of a.
func Sign(a float64) int {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}
