package tolerance

import (
	"fmt"
	"math"

	"github.com/lbl-srg/funnel-go/tube"
)

// Resolve computes the tube rectangle's half-width/half-height from ref's
// x/y ranges and the given tolerances.
//
// xLen is max(1e-5, 1e-5*|maxX|) when the reference's x-range is
// (numerically) zero, else max(atolx, rtolx*rangeX); yLen is computed the
// same way from the y column. Resolve fails with [tube.ErrBadTolerance] if
// neither atolx nor rtolx is positive, or neither atoly nor rtoly is
// positive.
func Resolve(ref tube.Curve, tol tube.Tolerances) (tube.Rectangle, error) {
	if tube.Equal(tol.AtolX, 0) && tube.Equal(tol.RtolX, 0) {
		return tube.Rectangle{}, fmt.Errorf("tolerance: resolve: %w", tube.ErrBadTolerance)
	}
	if tube.Equal(tol.AtolY, 0) && tube.Equal(tol.RtolY, 0) {
		return tube.Rectangle{}, fmt.Errorf("tolerance: resolve: %w", tube.ErrBadTolerance)
	}

	maxX, minX := extrema(ref.X)
	maxY, minY := extrema(ref.Y)
	rangeX := maxX - minX
	rangeY := maxY - minY

	var xLen, yLen float64
	if tube.Equal(rangeX, 0) {
		xLen = math.Max(1e-5, 1e-5*math.Abs(maxX))
	} else {
		xLen = math.Max(tol.AtolX, tol.RtolX*rangeX)
	}
	if tube.Equal(rangeY, 0) {
		yLen = math.Max(1e-5, 1e-5*math.Abs(maxY))
	} else {
		yLen = math.Max(tol.AtolY, tol.RtolY*rangeY)
	}

	return tube.Rectangle{
		XLen:   xLen,
		YLen:   yLen,
		RangeX: rangeX,
		RangeY: rangeY,
	}, nil
}

// extrema returns the max and min of a non-empty slice.
func extrema(values []float64) (max, min float64) {
	max, min = values[0], values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return max, min
}
