package interp_test

import (
	"testing"

	"github.com/lbl-srg/funnel-go/tube"
	"github.com/lbl-srg/funnel-go/tube/interp"
)

func TestOntoGridExactHits(t *testing.T) {
	source := tube.Curve{X: []float64{0, 1, 2, 3}, Y: []float64{0, 10, 20, 30}}
	target := tube.Curve{X: []float64{0, 1, 2, 3}}

	got := interp.OntoGrid(source, target)
	want := []float64{0, 10, 20, 30}
	if got.Len() != len(want) {
		t.Fatalf("len = %d, want %d", got.Len(), len(want))
	}
	for i, w := range want {
		if !tube.Equal(got.Y[i], w) {
			t.Fatalf("Y[%d] = %v, want %v", i, got.Y[i], w)
		}
	}
}

func TestOntoGridLinearBetweenPoints(t *testing.T) {
	source := tube.Curve{X: []float64{0, 2}, Y: []float64{0, 10}}
	target := tube.Curve{X: []float64{0, 0.5, 1, 1.5, 2}}

	got := interp.OntoGrid(source, target)
	want := []float64{0, 2.5, 5, 7.5, 10}
	for i, w := range want {
		if !tube.Equal(got.Y[i], w) {
			t.Fatalf("Y[%d] = %v, want %v", i, got.Y[i], w)
		}
	}
}

func TestOntoGridDoesNotExtrapolate(t *testing.T) {
	source := tube.Curve{X: []float64{0, 1, 2}, Y: []float64{0, 1, 2}}
	target := tube.Curve{X: []float64{0, 1, 2, 3, 4}}

	got := interp.OntoGrid(source, target)
	if got.Len() != 3 {
		t.Fatalf("len = %d, want 3 (target points beyond source.X[last] dropped)", got.Len())
	}
}

func TestOntoGridIncludesExactLastSourceX(t *testing.T) {
	// A target x equal to the source's last x must be included, not treated
	// as "beyond" the source: the truncation guard is a strict >.
	source := tube.Curve{X: []float64{0, 1, 2}, Y: []float64{0, 1, 2}}
	target := tube.Curve{X: []float64{0, 2}}

	got := interp.OntoGrid(source, target)
	if got.Len() != 2 {
		t.Fatalf("len = %d, want 2 (target.X[1] == source.X[last] must not be dropped)", got.Len())
	}
	if !tube.Equal(got.Y[1], 2) {
		t.Fatalf("Y[1] = %v, want 2", got.Y[1])
	}
}

func TestOntoGridMonotoneCursorAdvancesOnce(t *testing.T) {
	// A target grid finer than the source must still resolve correctly when
	// the cursor only ever advances forward through source.
	source := tube.Curve{X: []float64{0, 1, 2, 3, 4}, Y: []float64{0, 1, 4, 9, 16}}
	target := tube.Curve{X: []float64{0, 0.5, 1.5, 2.5, 3.5, 4}}

	got := interp.OntoGrid(source, target)
	if got.Len() != len(target.X) {
		t.Fatalf("len = %d, want %d", got.Len(), len(target.X))
	}
	if !tube.Equal(got.Y[1], 0.5) {
		t.Fatalf("Y[1] = %v, want 0.5", got.Y[1])
	}
	if !tube.Equal(got.Y[len(got.Y)-1], 16) {
		t.Fatalf("Y[last] = %v, want 16", got.Y[len(got.Y)-1])
	}
}

func TestOntoGridEmptySourceIsNoOp(t *testing.T) {
	source := tube.Curve{}
	target := tube.Curve{X: []float64{0, 1}}
	got := interp.OntoGrid(source, target)
	if got.Len() != 0 {
		t.Fatalf("len = %d, want 0 for empty source", got.Len())
	}
}
