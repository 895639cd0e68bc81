package envelope

import (
	"fmt"

	"github.com/lbl-srg/funnel-go/internal/pointseq"
	"github.com/lbl-srg/funnel-go/tube"
)

// RemoveLoops post-processes a raw envelope, finding backward segments
// (consecutive points with decreasing x), locating the pair of segments
// whose intersection resolves the loop, deleting the enclosed points,
// inserting the intersection, and de-duplicating the seam. The result is
// strictly non-decreasing in x with no adjacent duplicates.
func RemoveLoops(raw tube.Curve, side tube.Side) (tube.Curve, error) {
	seq := pointseq.NewFromSlices(append([]float64(nil), raw.X...), append([]float64(nil), raw.Y...))
	curInd := int(side)

	j := 1
	for j < seq.Len()-2 {
		xAt := func(i int) float64 { x, _ := seq.At(i); return x }
		yAt := func(i int) float64 { _, y := seq.At(i); return y }

		if xAt(j+1) >= xAt(j) {
			j++
			continue
		}

		// ===== 1. Find i, k such that segment (i-1,i) crosses (k-1,k) =====
		i := j

		for xAt(j+1) < xAt(i-1) {
			i--
		}
		iPrevious := i

		kMax := j + 1
		for kMax < seq.Len()-1 && xAt(kMax) < xAt(j) {
			kMax++
		}

		k := j + 1
		y := yAt(i - 1)

		for ((curInd == -1 && y < yAt(k)) || (curInd == 1 && yAt(k) < y)) && k < kMax {
			iPrevious = i
			k++

			for i < j {
				xi, xk := xAt(i), xAt(k)
				yi, yk := yAt(i), yAt(k)

				advance := xi < xk
				if !advance && curInd == -1 && tube.Equal(xi, xk) && yi < yk {
					advance = !nextSideBreaksLower(seq, k, yk)
				}
				if !advance && curInd == 1 && tube.Equal(xi, xk) && yi > yk {
					advance = !nextSideBreaksUpper(seq, k, yk)
				}
				if !advance {
					break
				}
				i++
			}

			if !tube.Equal(xAt(i), xAt(i-1)) {
				y = (yAt(i)-yAt(i-1))/(xAt(i)-xAt(i-1))*(xAt(k)-xAt(i-1)) + yAt(i-1)
			} else {
				y = yAt(i)
			}
		}

		if iPrevious > 1 {
			i = iPrevious - 1
		} else {
			i = iPrevious
		}

		if !tube.Equal(xAt(k), xAt(k-1)) {
			y = (yAt(k)-yAt(k-1))/(xAt(k)-xAt(k-1))*(xAt(i)-xAt(k-1)) + yAt(k-1)
		}

		for {
			segmentVertical := tube.Equal(xAt(k), xAt(k-1))
			if !segmentVertical {
				cond := (curInd == -1 && yAt(i) < y) || (curInd == 1 && y < yAt(i))
				if !cond {
					break
				}
			} else {
				if !(xAt(i) < xAt(k)) {
					break
				}
			}
			i++
			if !segmentVertical {
				y = (yAt(k)-yAt(k-1))/(xAt(k)-xAt(k-1))*(xAt(i)-xAt(k-1)) + yAt(k-1)
			}
		}

		// ===== 2. Intersection of segments (i-1,i) and (k-1,k) =====
		var ix, iy float64
		addPoint := true

		iVertical := tube.Equal(xAt(i), xAt(i-1))
		kVertical := tube.Equal(xAt(k), xAt(k-1))

		switch {
		case iVertical && kVertical:
			addPoint = false
		case iVertical:
			ix = xAt(i)
			iy = yAt(k-1) + ((xAt(i)-xAt(k-1))*(yAt(k)-yAt(k-1)))/(xAt(k)-xAt(k-1))
		case kVertical:
			ix = xAt(k)
			iy = yAt(i-1) + ((xAt(k)-xAt(i-1))*(yAt(i)-yAt(i-1)))/(xAt(i)-xAt(i-1))
		default:
			a1 := (yAt(i) - yAt(i-1)) / (xAt(i) - xAt(i-1))
			a2 := (yAt(k) - yAt(k-1)) / (xAt(k) - xAt(k-1))
			if tube.Equal(a1, a2) {
				addPoint = false
			} else {
				ix = (a1*xAt(i-1) - a2*xAt(k-1) - yAt(i-1) + yAt(k-1)) / (a1 - a2)
				if absF(a1) > absF(a2) {
					iy = a2*(ix-xAt(k-1)) + yAt(k-1)
				} else {
					iy = a1*(ix-xAt(i-1)) + yAt(i-1)
				}
			}
		}

		// ===== 3. Delete points [i, k) =====
		count := k - i
		if i < 0 || count < 0 || i+count > seq.Len() {
			return tube.Curve{}, fmt.Errorf("envelope: remove loops %s: %w", side, tube.ErrInvalidRange)
		}
		seq.RemoveRange(i, count)

		// ===== 4. Insert intersection point, if new =====
		if addPoint {
			var curX, curY float64
			if i < seq.Len() {
				curX, curY = seq.At(i)
			}
			if i >= seq.Len() || !tube.Equal(curX, ix) || !tube.Equal(curY, iy) {
				seq.InsertAt(i, ix, iy)
			}
		}

		// ===== 5. j = i =====
		j = i

		// ===== 6. De-duplicate the seam =====
		if i > 0 && i < seq.Len() {
			x0, y0 := seq.At(i - 1)
			x1, y1 := seq.At(i)
			if tube.Equal(x0, x1) && tube.Equal(y0, y1) {
				seq.RemoveAt(i)
				j = i - 1
			}
		}

		j++
	}

	rx, ry := seq.Values()
	return tube.Curve{X: rx, Y: ry}, nil
}

// nextSideBreaksLower reports whether the lookahead exception for the lower
// side holds: the next point (k+1) continues horizontally below Y[k].
func nextSideBreaksLower(seq *pointseq.Seq, k int, yk float64) bool {
	if k+1 >= seq.Len() {
		return false
	}
	xk, _ := seq.At(k)
	xk1, yk1 := seq.At(k + 1)
	return tube.Equal(xk, xk1) && yk1 < yk
}

// nextSideBreaksUpper is the upper-side mirror of nextSideBreaksLower.
func nextSideBreaksUpper(seq *pointseq.Seq, k int, yk float64) bool {
	if k+1 >= seq.Len() {
		return false
	}
	xk, _ := seq.At(k)
	xk1, yk1 := seq.At(k + 1)
	return tube.Equal(xk, xk1) && yk1 > yk
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
