// Package pointseq provides a growable ordered sequence of (x, y) pairs with
// O(1) push-back/pop-back and O(k) splice operations. It replaces the
// singly-linked accumulator and the malloc/realloc-per-mutation array
// rebuild of the original C tube builder: same algorithmic content, no
// repeated length walks or O(N^2) copying.
package pointseq

// Seq is a growable sequence of (x, y) pairs.
type Seq struct {
	x []float64
	y []float64
}

// New returns an empty sequence.
func New() *Seq {
	return &Seq{}
}

// NewFromSlices wraps existing slices without copying. x and y must have
// equal length.
func NewFromSlices(x, y []float64) *Seq {
	return &Seq{x: x, y: y}
}

// Len returns the number of points currently stored.
func (s *Seq) Len() int {
	return len(s.x)
}

// PushBack appends (x, y) to the end of the sequence.
func (s *Seq) PushBack(x, y float64) {
	s.x = append(s.x, x)
	s.y = append(s.y, y)
}

// PopBack removes the last point. It is a no-op on an empty sequence.
func (s *Seq) PopBack() {
	n := len(s.x)
	if n == 0 {
		return
	}
	s.x = s.x[:n-1]
	s.y = s.y[:n-1]
}

// At returns the point at index i.
func (s *Seq) At(i int) (x, y float64) {
	return s.x[i], s.y[i]
}

// Last returns the last point. Panics on an empty sequence, as it indicates
// a caller bug (mirrors the assertion-like preconditions documented in
// DESIGN.md for the horizontal-collapse rule).
func (s *Seq) Last() (x, y float64) {
	return s.At(s.Len() - 1)
}

// NthFromEnd returns the point k positions before the last one (k=0 is the
// last point, k=1 the second-to-last, ...).
func (s *Seq) NthFromEnd(k int) (x, y float64) {
	return s.At(s.Len() - 1 - k)
}

// X returns the backing x slice. The caller must not retain it across
// further mutation of s.
func (s *Seq) X() []float64 {
	return s.x
}

// Y returns the backing y slice. The caller must not retain it across
// further mutation of s.
func (s *Seq) Y() []float64 {
	return s.y
}

// Values returns freshly allocated copies of the x and y slices, so the
// caller owns the result independently of s.
func (s *Seq) Values() (x, y []float64) {
	x = make([]float64, len(s.x))
	y = make([]float64, len(s.y))
	copy(x, s.x)
	copy(y, s.y)
	return x, y
}

// RemoveRange deletes count points starting at index start, shifting the
// remainder down in place.
func (s *Seq) RemoveRange(start, count int) {
	if count <= 0 {
		return
	}
	s.x = append(s.x[:start], s.x[start+count:]...)
	s.y = append(s.y[:start], s.y[start+count:]...)
}

// RemoveAt deletes the single point at index i.
func (s *Seq) RemoveAt(i int) {
	s.RemoveRange(i, 1)
}

// InsertAt inserts (x, y) at index i, shifting later points up by one.
func (s *Seq) InsertAt(i int, x, y float64) {
	s.x = append(s.x, 0)
	copy(s.x[i+1:], s.x[i:])
	s.x[i] = x

	s.y = append(s.y, 0)
	copy(s.y[i+1:], s.y[i:])
	s.y[i] = y
}
