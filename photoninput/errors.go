package photoninput

import "errors"

// ErrMalformedRecord indicates a line did not parse as
// "eventId fiberType fiberId x y z t0 t1 ...": too few fields, or a field
// that failed to parse as its expected type.
var ErrMalformedRecord = errors.New("photoninput: malformed record")
