package envelope

import (
	"fmt"

	"github.com/lbl-srg/funnel-go/internal/pointseq"
	"github.com/lbl-srg/funnel-go/tube"
)

const bigSlope = 1e15

// BuildRaw walks the reference polyline and emits the sequence of
// rectangle-corner points forming the candidate lower/upper envelope for
// side. The result may contain backward segments (loops); pass it through
// [RemoveLoops] to obtain a cleaned, x-monotone envelope.
func BuildRaw(ref tube.Curve, rect tube.Rectangle, side tube.Side) (tube.Curve, error) {
	n := ref.Len()
	if n < 2 {
		return tube.Curve{}, fmt.Errorf("envelope: build raw %s: %w", side, tube.ErrDegenerateReference)
	}

	x, y := ref.X, ref.Y
	offset := float64(side) * rect.YLen

	// Initial-duplicate skip: find the first index b where the curve
	// actually moves.
	b := 0
	for tube.Equal(x[b], x[b+1]) && tube.Equal(y[b], y[b+1]) {
		b++
		if b+1 >= n {
			return tube.Curve{}, fmt.Errorf("envelope: build raw %s: %w", side, tube.ErrDegenerateReference)
		}
	}

	s0, m0 := slope(x, y, b)

	seq := pointseq.New()

	emitLeft := func(i int) { seq.PushBack(x[i]-rect.XLen, y[i]+offset) }
	emitRight := func(i int) { seq.PushBack(x[i]+rect.XLen, y[i]+offset) }

	// Start: rectangle centered at reference[b].
	emitLeft(b)
	if s0 == -int(side) {
		emitRight(b)
	}

	for i := b + 1; i < n-1; i++ {
		if tube.Equal(x[i], x[i+1]) && tube.Equal(y[i], y[i+1]) {
			continue
		}

		s1, m1 := slope(x, y, i)

		if !tube.Equal(m0, m1) {
			emitCorners(side, s0, s1, i, emitLeft, emitRight)
			collapseHorizontalRun(seq, side, s0, s1, y[i+1]+offset)
		}

		s0, m0 = s1, m1
	}

	// End: rectangle centered at reference[n-1].
	if s0 == int(side) {
		emitLeft(n - 1)
	}
	emitRight(n - 1)

	rx, ry := seq.Values()
	return tube.Curve{X: rx, Y: ry}, nil
}

// slope returns the sign and slope of the reference segment (i, i+1),
// following the +-1e15 convention for (numerically) vertical segments.
func slope(x, y []float64, i int) (sign int, m float64) {
	sign = tube.Sign(y[i+1] - y[i])
	if !tube.Equal(x[i+1], x[i]) {
		return sign, (y[i+1] - y[i]) / (x[i+1] - x[i])
	}
	if sign > 0 {
		return sign, bigSlope
	}
	return sign, -bigSlope
}

// emitCorners applies the side-specific corner-emission table for the
// transition from slope sign s0 to s1 at reference vertex i.
func emitCorners(side tube.Side, s0, s1, i int, emitLeft, emitRight func(int)) {
	switch {
	case side == tube.Lower:
		switch {
		case s0 != -1 && s1 != -1:
			emitRight(i)
		case s0 != 1 && s1 != 1:
			emitLeft(i)
		case s0 == -1 && s1 == 1:
			emitLeft(i)
			emitRight(i)
		case s0 == 1 && s1 == -1:
			emitRight(i)
			emitLeft(i)
		}
	default: // tube.Upper
		switch {
		case s0 != -1 && s1 != -1:
			emitLeft(i)
		case s0 != 1 && s1 != 1:
			emitRight(i)
		case s0 == 1 && s1 == -1:
			emitLeft(i)
			emitRight(i)
		case s0 == -1 && s1 == 1:
			emitRight(i)
			emitLeft(i)
		}
	}
}

// collapseHorizontalRun implements the horizontal-continuation collapse
// rule: if the segment about to arrive at the next reference vertex would
// continue horizontally at the tube y we just emitted, the emission just
// made is redundant and is popped back off.
func collapseHorizontalRun(seq *pointseq.Seq, side tube.Side, s0, s1 int, nextTubeY float64) {
	_, lastY := seq.Last()
	if !tube.Equal(nextTubeY, lastY) {
		return
	}

	if tube.Equal(float64(s0*s1), -1) {
		if seq.Len() >= 3 {
			if _, y := seq.NthFromEnd(2); tube.Equal(y, lastY) {
				seq.PopBack()
				seq.PopBack()
			}
		}
		return
	}

	if seq.Len() >= 2 {
		if _, y := seq.NthFromEnd(1); tube.Equal(y, lastY) {
			seq.PopBack()
		}
	}
}
