// Package tolerance converts a reference curve and a set of absolute/relative
// tolerances into the half-width/half-height rectangle swept along the
// reference curve by the envelope builder.
package tolerance
