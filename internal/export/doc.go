// Package export writes the animation out of process: animated GIF
// recordings, PNG snapshots and SVG documents of a single frame.
package export
