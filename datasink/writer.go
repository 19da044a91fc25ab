package datasink

import "github.com/gophotonics/sipmsim/simworker"

// Geometry is one fiber's static metadata row, keyed by the event it was
// read alongside: eventId, fiberType, fiberId, x, y, z.
type Geometry struct {
	EventID   int64
	FiberType int8
	FiberID   int64
	X, Y, Z   float64
}

// Writer is the output contract the simulation driver writes through.
// Implementations decide their own storage format and buffering; the
// reference CSVWriter in this package is intentionally minimal.
type Writer interface {
	// WriteFeatures appends one event's Result (Features + Counters +
	// Tag) to the features table.
	WriteFeatures(res simworker.Result) error

	// WriteGeometry records the static fiber geometry table. Callers that
	// never need it may skip calling this method entirely.
	WriteGeometry(geom []Geometry) error

	// WriteWaveforms appends one event's full digitized waveform.
	// Implementations may treat this as a no-op when the caller never
	// requested waveform capture (simworker.Driver built with
	// keepWaveform=false will simply never have a waveform to pass).
	WriteWaveforms(tag any, samples []float64) error

	// Close flushes and releases any underlying resource. After Close,
	// every Write* method must return ErrWriterClosed.
	Close() error
}
