// Package engine wires tolerance resolution, envelope construction, loop
// removal, interpolation and validation together into the synchronous
// compare-and-report entry point the original tool exposes as
// compareAndReport.
//
// It lives apart from [tube] itself so the leaf types in that package
// (Curve, Side, Rectangle, Tolerances, the Err* sentinels) can be imported
// by tube/envelope, tube/interp, tube/tolerance and tube/validate without
// those packages importing back into the orchestrator that depends on all
// four of them.
package engine
