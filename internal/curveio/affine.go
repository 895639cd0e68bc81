package curveio

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/lbl-srg/funnel-go/tube"
)

// ApplyAffine rewrites curve's Y column in place as y' = y*scale + offset,
// letting a CSV input recorded in different units (e.g. degC vs K, or a
// per-channel calibration factor) be normalized right after it is read.
//
// The multiplicative half is applied with vecmath.MulBlockInPlace against a
// constant-filled coefficient vector, the same "multiply the whole block by
// a coefficient vector" shape a window function is applied with; the
// additive half is a plain loop, since the package's public surface exposes
// no bulk-add primitive.
func ApplyAffine(curve tube.Curve, scale, offset float64) {
	if curve.Len() == 0 {
		return
	}

	if !tube.Equal(scale, 1) {
		coeffs := make([]float64, curve.Len())
		for i := range coeffs {
			coeffs[i] = scale
		}
		vecmath.MulBlockInPlace(curve.Y, coeffs)
	}

	if !tube.Equal(offset, 0) {
		for i := range curve.Y {
			curve.Y[i] += offset
		}
	}
}
