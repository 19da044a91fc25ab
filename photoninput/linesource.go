package photoninput

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineSource reads Records from the whitespace-separated line format
// documented in doc.go. It is the only Source this package implements;
// richer input formats (columnar, binary, compressed) are left to a
// production input layer.
type LineSource struct {
	scanner *bufio.Scanner
}

// NewLineSource wraps r as a LineSource.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r)}
}

// Next parses and returns the next non-blank line as a Record. It returns
// io.EOF once the underlying reader is exhausted, or a wrapped
// ErrMalformedRecord if a non-blank line does not fit the documented
// format.
func (s *LineSource) Next() (Record, error) {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		return parseLine(line)
	}
	if err := s.scanner.Err(); err != nil {
		return Record{}, err
	}
	return Record{}, io.EOF
}

func parseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return Record{}, fmt.Errorf("%w: %q has %d fields, want at least 6", ErrMalformedRecord, line, len(fields))
	}

	eventID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: eventId %q: %v", ErrMalformedRecord, fields[0], err)
	}
	fiberType, err := strconv.ParseInt(fields[1], 10, 8)
	if err != nil {
		return Record{}, fmt.Errorf("%w: fiberType %q: %v", ErrMalformedRecord, fields[1], err)
	}
	fiberID, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: fiberId %q: %v", ErrMalformedRecord, fields[2], err)
	}
	x, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: x %q: %v", ErrMalformedRecord, fields[3], err)
	}
	y, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: y %q: %v", ErrMalformedRecord, fields[4], err)
	}
	z, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: z %q: %v", ErrMalformedRecord, fields[5], err)
	}

	times := make([]float64, 0, len(fields)-6)
	for _, f := range fields[6:] {
		t, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: photon time %q: %v", ErrMalformedRecord, f, err)
		}
		times = append(times, t)
	}

	return Record{
		EventID:       eventID,
		FiberType:     int8(fiberType),
		FiberID:       fiberID,
		X:             x,
		Y:             y,
		Z:             z,
		PhotonTimesNS: times,
	}, nil
}
