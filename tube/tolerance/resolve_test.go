package tolerance_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lbl-srg/funnel-go/tube"
	"github.com/lbl-srg/funnel-go/tube/tolerance"
)

func TestResolveAbsolute(t *testing.T) {
	ref := tube.Curve{X: []float64{0, 1, 2}, Y: []float64{0, 1, 0}}
	rect, err := tolerance.Resolve(ref, tube.Tolerances{AtolX: 0.1, AtolY: 0.1})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if rect.XLen != 0.1 || rect.YLen != 0.1 {
		t.Fatalf("rect = %+v, want XLen=YLen=0.1", rect)
	}
	if rect.RangeX != 2 || rect.RangeY != 1 {
		t.Fatalf("rect ranges = %v,%v want 2,1", rect.RangeX, rect.RangeY)
	}
}

func TestResolveRelativeWins(t *testing.T) {
	ref := tube.Curve{X: []float64{0, 10}, Y: []float64{0, 10}}
	rect, err := tolerance.Resolve(ref, tube.Tolerances{AtolX: 0.01, RtolX: 0.5, AtolY: 0.01, RtolY: 0.5})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if rect.XLen != 5 || rect.YLen != 5 {
		t.Fatalf("rect = %+v, want XLen=YLen=5 (rtol*range dominates atol)", rect)
	}
}

func TestResolveZeroRangeFallback(t *testing.T) {
	// S6: all-constant reference, rangeY = 0, falls back to max(1e-5, 1e-5*|maxY|).
	ref := tube.Curve{X: []float64{0, 1, 2}, Y: []float64{5, 5, 5}}
	rect, err := tolerance.Resolve(ref, tube.Tolerances{AtolX: 0.1, AtolY: 0, RtolY: 0.01})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := math.Max(1e-5, 1e-5*5)
	if math.Abs(rect.YLen-want) > 1e-12 {
		t.Fatalf("YLen = %v, want %v", rect.YLen, want)
	}
}

func TestResolveBadToleranceX(t *testing.T) {
	ref := tube.Curve{X: []float64{0, 1}, Y: []float64{0, 1}}
	_, err := tolerance.Resolve(ref, tube.Tolerances{AtolY: 0.1})
	if !errors.Is(err, tube.ErrBadTolerance) {
		t.Fatalf("err = %v, want ErrBadTolerance", err)
	}
}

func TestResolveBadToleranceY(t *testing.T) {
	ref := tube.Curve{X: []float64{0, 1}, Y: []float64{0, 1}}
	_, err := tolerance.Resolve(ref, tube.Tolerances{AtolX: 0.1})
	if !errors.Is(err, tube.ErrBadTolerance) {
		t.Fatalf("err = %v, want ErrBadTolerance", err)
	}
}

func TestResolveMonotoneInTolerance(t *testing.T) {
	// Property 5: enlarging a tolerance cannot shrink the rectangle.
	ref := tube.Curve{X: []float64{0, 1, 2}, Y: []float64{0, 2, 1}}
	small, err := tolerance.Resolve(ref, tube.Tolerances{AtolX: 0.1, AtolY: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	big, err := tolerance.Resolve(ref, tube.Tolerances{AtolX: 0.2, AtolY: 0.3})
	if err != nil {
		t.Fatal(err)
	}
	if big.XLen < small.XLen || big.YLen < small.YLen {
		t.Fatalf("big=%+v should be >= small=%+v", big, small)
	}
}
