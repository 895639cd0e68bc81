package validate

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/lbl-srg/funnel-go/tube"
)

// Validate compares test against the already-interpolated lower/upper
// envelope bounds and returns a sparse report of the violating points plus
// a dense per-sample deviation curve.
//
// The three curves are walked only as far as their shortest length, since
// the lower/upper bounds may be shorter than test when [interp.OntoGrid]
// stopped short of extrapolating.
func Validate(lower, upper, test tube.Curve) (tube.ErrorReport, error) {
	n := test.Len()
	if l := lower.Len(); l < n {
		n = l
	}
	if u := upper.Len(); u < n {
		n = u
	}
	if n == 0 {
		return tube.ErrorReport{}, fmt.Errorf("validate: %w", tube.ErrEmptyEnvelope)
	}

	diffX := make([]float64, n)
	diffY := make([]float64, n)
	var sparseX, sparseY []float64

	for i := 0; i < n; i++ {
		diffX[i] = test.X[i]

		switch {
		case test.Y[i] < lower.Y[i]:
			diffY[i] = lower.Y[i] - test.Y[i]
		case test.Y[i] > upper.Y[i]:
			diffY[i] = test.Y[i] - upper.Y[i]
		default:
			diffY[i] = 0
		}

		if diffY[i] != 0 {
			sparseX = append(sparseX, test.X[i])
			sparseY = append(sparseY, diffY[i])
		}
	}

	return tube.ErrorReport{
		Original: tube.Curve{X: sparseX, Y: sparseY},
		Diff:     tube.Curve{X: diffX, Y: diffY},
	}, nil
}

// RMS returns the root-mean-square of report's dense deviation curve, used
// as the headline statistic for a verbose comparison summary. It uses
// vecmath.MulBlock for the elementwise squaring, the same bulk-elementwise-op
// shape dsp/spectrum uses vecmath for, before a plain scalar reduction.
func RMS(report tube.ErrorReport) float64 {
	n := report.Diff.Len()
	if n == 0 {
		return 0
	}
	squared := make([]float64, n)
	vecmath.MulBlock(squared, report.Diff.Y, report.Diff.Y)

	var sum float64
	for _, v := range squared {
		sum += v
	}
	return math.Sqrt(sum / float64(n))
}
