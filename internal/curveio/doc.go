// Package curveio reads and writes the two-column CSV files the funnel
// engine and its command-line front end consume and produce: a tolerant
// reader that accepts comma- or semicolon-delimited rows and stops at the
// first line it cannot parse, and a writer emitting the engine's fixed
// "x,y" / "%lf,%lf" format.
package curveio
