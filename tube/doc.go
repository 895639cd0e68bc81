// Package tube holds the shared data model for tolerance "tube" (or
// "funnel") envelopes around a reference polyline: Curve, Side, Rectangle,
// Tolerances, ErrorReport, the universal Equal/Sign numeric predicates, and
// the Err* sentinels every tube/* package returns.
//
// A reference curve is swept by a rectangle of half-width xLen and
// half-height yLen (see [tolerance.Resolve]); the lower and upper envelopes
// are the extremal lower/upper edges of the Minkowski sum of the reference
// with that rectangle (see the envelope package). This package deliberately
// imports none of its siblings, so tube/envelope, tube/interp,
// tube/tolerance and tube/validate can each import it without an import
// cycle; tube/engine wires all four together into a [engine.Result], and
// writing the CSV artifacts out is left to
// github.com/lbl-srg/funnel-go/cmd/funnel.
package tube
