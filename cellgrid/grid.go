package cellgrid

// ID identifies a single SiPM micro-cell by its flattened row-major index
// in [0, NCell]. It is a named int32 (not a (x,y) pair) because the
// crosstalk model addresses neighbours by integer offset directly.
type ID int32

// Grid precomputes the eight-neighbour offset table and border-clamp
// policy for one CellSide×CellSide SiPM matrix. It is immutable after
// construction and safe for concurrent read-only use by every worker.
type Grid struct {
	side    int
	ncell   int
	offsets [8]int32
}

// New builds a Grid for a CellSide×CellSide matrix. side must be ≥ 1; the
// caller (sipmconfig) validates this before construction, so New does not
// return an error.
//
// Complexity: O(1).
func New(side int) *Grid {
	g := &Grid{
		side:  side,
		ncell: side*side - 1,
	}
	s := int32(side)
	g.offsets = [8]int32{
		1, -1, s, -s,
		1 + s, 1 - s,
		-1 + s, -1 - s,
	}
	return g
}

// NCell returns the maximum valid cell ID (inclusive): cells are numbered
// [0, NCell].
func (g *Grid) NCell() int { return g.ncell }

// Side returns the configured CellSide.
func (g *Grid) Side() int { return g.side }

// Offsets returns the eight flattened-index neighbour offsets: ±1,
// ±CellSide, and the four diagonals ±(CellSide±1), in the fixed order the
// physics model enumerates them in.
func (g *Grid) Offsets() [8]int32 { return g.offsets }

// Neighbour returns the cell reached from id by the given offset index
// (0..7, indexing into Offsets), clamped into [0, NCell] per the border
// policy documented in doc.go.
//
// Complexity: O(1).
func (g *Grid) Neighbour(id ID, offsetIdx int) ID {
	raw := int32(id) + g.offsets[offsetIdx]
	return g.clamp(raw)
}

func (g *Grid) clamp(raw int32) ID {
	if raw < 0 {
		return 0
	}
	if raw > int32(g.ncell) {
		return ID(g.ncell)
	}
	return ID(raw)
}
