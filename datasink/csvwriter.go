package datasink

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gophotonics/sipmsim/simworker"
)

// CSVWriter is the minimal reference Writer implementation: one CSV file
// per table, written through encoding/csv. Production deployments are
// expected to supply their own Writer backed by a columnar or HDF5 format;
// CSVWriter exists so the rest of the pipeline has something concrete to
// write through and test against.
type CSVWriter struct {
	features  *csv.Writer
	geometry  *csv.Writer
	waveforms *csv.Writer
	closed    bool
}

// NewCSVWriter builds a CSVWriter over the three destinations. Any of them
// may be io.Discard-backed if the caller does not need that table.
func NewCSVWriter(features, geometry, waveforms io.Writer) *CSVWriter {
	return &CSVWriter{
		features:  csv.NewWriter(features),
		geometry:  csv.NewWriter(geometry),
		waveforms: csv.NewWriter(waveforms),
	}
}

// WriteFeatures appends one row: tag, peak, integral, toa, tot, top, npe,
// ndcr, nxt, nap.
func (w *CSVWriter) WriteFeatures(res simworker.Result) error {
	if w.closed {
		return ErrWriterClosed
	}
	row := []string{
		fmt.Sprint(res.Tag),
		strconv.FormatFloat(res.Features.Peak, 'g', -1, 64),
		strconv.FormatFloat(res.Features.Integral, 'g', -1, 64),
		strconv.FormatFloat(res.Features.ToA, 'g', -1, 64),
		strconv.FormatFloat(res.Features.ToT, 'g', -1, 64),
		strconv.FormatFloat(res.Features.ToP, 'g', -1, 64),
		strconv.Itoa(res.Counters.NPE),
		strconv.Itoa(res.Counters.NDCR),
		strconv.Itoa(res.Counters.NXT),
		strconv.Itoa(res.Counters.NAP),
	}
	return w.features.Write(row)
}

// WriteGeometry appends one row per fiber: eventId, fiberType, fiberId,
// x, y, z.
func (w *CSVWriter) WriteGeometry(geom []Geometry) error {
	if w.closed {
		return ErrWriterClosed
	}
	for _, g := range geom {
		row := []string{
			strconv.FormatInt(g.EventID, 10),
			strconv.FormatInt(int64(g.FiberType), 10),
			strconv.FormatInt(g.FiberID, 10),
			strconv.FormatFloat(g.X, 'g', -1, 64),
			strconv.FormatFloat(g.Y, 'g', -1, 64),
			strconv.FormatFloat(g.Z, 'g', -1, 64),
		}
		if err := w.geometry.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteWaveforms appends one row: tag followed by every sample.
func (w *CSVWriter) WriteWaveforms(tag any, samples []float64) error {
	if w.closed {
		return ErrWriterClosed
	}
	row := make([]string, len(samples)+1)
	row[0] = fmt.Sprint(tag)
	for i, s := range samples {
		row[i+1] = strconv.FormatFloat(s, 'g', -1, 64)
	}
	return w.waveforms.Write(row)
}

// Close flushes every underlying csv.Writer and marks w closed.
func (w *CSVWriter) Close() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true
	w.features.Flush()
	w.geometry.Flush()
	w.waveforms.Flush()
	if err := w.features.Error(); err != nil {
		return err
	}
	if err := w.geometry.Error(); err != nil {
		return err
	}
	return w.waveforms.Error()
}
