package interp

import "github.com/lbl-srg/funnel-go/tube"

// OntoGrid resamples source piecewise-linearly onto target's x-grid. The
// cursor into source only ever advances, since target's x values are
// assumed non-decreasing.
//
// Resampling stops at the first target x beyond source's last x rather than
// extrapolating: the returned curve's X is a prefix of target.X, possibly
// shorter than target.
//
// A source curve with no points is returned unchanged, matching the source
// tube's treatment of a null/empty source series as a pass-through.
func OntoGrid(source, target tube.Curve) tube.Curve {
	if source.Len() < 2 {
		return source
	}

	resultX := make([]float64, 0, len(target.X))
	resultY := make([]float64, 0, len(target.X))

	lastX := source.X[source.Len()-1]
	j := 1

	for i := 0; i < len(target.X); i++ {
		x := target.X[i]
		if x > lastX {
			break
		}

		x1, y1 := source.X[j], source.Y[j]
		for x1 < x && j+1 < source.Len() {
			j++
			x1, y1 = source.X[j], source.Y[j]
		}
		x0, y0 := source.X[j-1], source.Y[j-1]

		var y float64
		if !tube.Equal((x1-x0)*(x-x0), 0) {
			y = y0 + ((y1-y0)/(x1-x0))*(x-x0)
		} else {
			y = y0
		}

		resultX = append(resultX, x)
		resultY = append(resultY, y)
	}

	return tube.Curve{X: resultX, Y: resultY}
}
