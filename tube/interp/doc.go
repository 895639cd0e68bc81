// Package interp resamples an envelope curve onto a test curve's x-grid by
// piecewise-linear interpolation, advancing a monotone cursor over the
// source curve rather than re-searching it per target point.
package interp
