package testutil

import (
	"math"
	"math/rand"

	"github.com/lbl-srg/funnel-go/tube"
)

// Ramp returns a linearly spaced x-grid from 0 to (n-1)*dx paired with a
// straight-line y = slope*x + intercept, useful as a degenerate-free
// baseline reference curve.
func Ramp(n int, dx, slope, intercept float64) tube.Curve {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) * dx
		y[i] = slope*x[i] + intercept
	}
	return tube.Curve{X: x, Y: y}
}

// DeterministicSine returns a sampled sine wave as a curve, sampled at a
// fixed rate so repeated test runs see identical data.
func DeterministicSine(n int, dx, freqHz, amplitude float64) tube.Curve {
	x := make([]float64, n)
	y := make([]float64, n)
	step := 2 * math.Pi * freqHz * dx
	for i := range x {
		x[i] = float64(i) * dx
		y[i] = amplitude * math.Sin(step*float64(i))
	}
	return tube.Curve{X: x, Y: y}
}

// ZigZag returns a curve alternating between +amplitude and -amplitude at
// every other sample, a compact generator of sharp slope-sign reversals
// that exercise the envelope builder's corner-emission cases.
func ZigZag(n int, dx, amplitude float64) tube.Curve {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) * dx
		if i%2 == 0 {
			y[i] = amplitude
		} else {
			y[i] = -amplitude
		}
	}
	return tube.Curve{X: x, Y: y}
}

// Constant returns a flat curve, the degenerate zero-range reference the
// tolerance resolver's fallback branch is exercised against.
func Constant(n int, dx, value float64) tube.Curve {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) * dx
		y[i] = value
	}
	return tube.Curve{X: x, Y: y}
}

// DeterministicNoise adds fixed-seed pseudo-random jitter to base's Y
// column, simulating a test curve that deviates from a reference signal by
// a reproducible amount.
func DeterministicNoise(base tube.Curve, seed int64, amplitude float64) tube.Curve {
	rng := rand.New(rand.NewSource(seed))
	y := make([]float64, base.Len())
	for i := range y {
		y[i] = base.Y[i] + (rng.Float64()*2-1)*amplitude
	}
	return tube.Curve{X: append([]float64(nil), base.X...), Y: y}
}
