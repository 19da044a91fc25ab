// Package datasink defines the output contract the simulation driver
// writes through: per-event Features, optional Geometry and Waveforms
// tables. A production HDF5/columnar writer is left to a downstream
// consumer — only the interface and a minimal CSV implementation live
// here.
package datasink
