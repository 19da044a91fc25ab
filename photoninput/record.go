package photoninput

// Record is one event's worth of photon arrival data: which fiber and
// event it came from, the fiber's position, and every photon arrival time
// observed for that event on that channel.
type Record struct {
	EventID       int64
	FiberType     int8
	FiberID       int64
	X, Y, Z       float64
	PhotonTimesNS []float64
}

// Source is the minimal iterator contract the simulation driver reads
// records through, independent of whatever storage format backs it.
// LineSource is the only implementation this package provides.
type Source interface {
	// Next returns the next Record, or an error. Implementations return
	// io.EOF (unwrapped, checkable with errors.Is) once no Records remain.
	Next() (Record, error)
}
