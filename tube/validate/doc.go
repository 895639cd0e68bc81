// Package validate compares a test curve against the interpolated
// lower/upper envelope bounds and reports the result as a sparse list of
// violating points plus a dense per-sample deviation curve.
package validate
