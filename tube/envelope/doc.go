// Package envelope builds the raw lower/upper tube envelopes around a
// reference polyline and removes the self-intersecting ("backward") loops
// that the raw builder can produce, leaving a polyline that is
// non-decreasing in x (vertical edges may remain) with no adjacent
// duplicates.
//
// The builder and the loop remover are both written against a single signed
// [tube.Side] indicator rather than duplicated per side: the corner-emission
// table, the horizontal-continuation collapse rule and the two in-loop
// comparisons in the loop remover all flip sign with the side, as in the
// original C implementation's calculateLower/calculateUpper pair.
package envelope
