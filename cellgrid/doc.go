// Package cellgrid addresses the SiPM micro-cell matrix: a CELLSIDE×CELLSIDE
// grid of avalanche cells flattened into a single integer ID space
// [0, NCELL], and the eight-neighbour offset table optical crosstalk walks.
//
// Neighbours are addressed by integer offset on the flattened ID
// directly: ±1, ±CELLSIDE, and the four diagonals ±(CELLSIDE±1), precomputed
// once per Grid rather than recomputed per lookup.
//
// # Border policy
//
// A crosstalk neighbour offset can push an ID outside [0, NCELL] near the
// SiPM edge. This package clamps rather than rejects, because clamping
// keeps the crosstalk branching-ratio expectation exact even for avalanches
// born near the border, at the cost of a small, bounded, physically
// negligible edge bias (perimeter / NCELL → 0 as NCELL grows).
package cellgrid
