// Package testutil generates deterministic reference and test curves for
// table-driven tests across the tube packages, adapted from the style of
// deterministic-signal generators to emit [tube.Curve] values instead of raw
// sample slices.
package testutil
