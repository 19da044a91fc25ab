// Package photoninput defines the event record type the simulation core
// consumes and a minimal line-oriented reader for it. A full columnar/HDF5
// input path is left to a production ingestion layer; this package covers
// only the reference line format below.
//
// # Line format
//
// One event per line, whitespace-separated:
//
//	eventId fiberType fiberId x y z t0 t1 ...
//
// eventId and fiberId are integers, fiberType is a small integer tag, x/y/z
// are the fiber's position in millimeters, and every field from t0 onward
// is one photon arrival time in nanoseconds (zero or more of them).
package photoninput
