package thistlethwaite

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// unvisited marks a phase-table slot that has not been reached by the BFS
// that generates it.
const unvisited = 0xFF

// PhaseTable is a dense depth lookup for one phase's coordinate space: a
// single byte per coordinate, 0xFF meaning "not yet visited". All four
// phase coordinate ranges are small enough (the largest, phase 1, is
// 1,082,565 entries) that a flat []uint8 beats a map on both memory and
// lookup cost.
type PhaseTable struct {
	Depth []uint8
}

// NewPhaseTable allocates a phase table of the given capacity, with every
// slot marked unvisited.
func NewPhaseTable(size int) *PhaseTable {
	t := &PhaseTable{Depth: make([]uint8, size)}
	for i := range t.Depth {
		t.Depth[i] = unvisited
	}
	return t
}

// Get returns the BFS depth stored for coord, and whether it was visited.
func (t *PhaseTable) Get(coord uint32) (uint8, bool) {
	if int(coord) >= len(t.Depth) {
		return 0, false
	}
	d := t.Depth[coord]
	if d == unvisited {
		return 0, false
	}
	return d, true
}

// Set records depth for coord.
func (t *PhaseTable) Set(coord uint32, depth uint8) {
	t.Depth[coord] = depth
}

// Len returns the number of visited coordinates.
func (t *PhaseTable) Len() int {
	n := 0
	for _, d := range t.Depth {
		if d != unvisited {
			n++
		}
	}
	return n
}

// MaxDepth returns the greatest depth recorded in the table.
func (t *PhaseTable) MaxDepth() uint8 {
	var max uint8
	for _, d := range t.Depth {
		if d != unvisited && d > max {
			max = d
		}
	}
	return max
}

// WriteFile serializes t to path as a little-endian u32 count header
// followed by count x {u32 coord, u32 depth} records.
func (t *PhaseTable) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("thistlethwaite: create table file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(t.Len()))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("thistlethwaite: write table header: %w", err)
	}

	var rec [8]byte
	for coord, d := range t.Depth {
		if d == unvisited {
			continue
		}
		binary.LittleEndian.PutUint32(rec[0:4], uint32(coord))
		binary.LittleEndian.PutUint32(rec[4:8], uint32(d))
		if _, err := w.Write(rec[:]); err != nil {
			return fmt.Errorf("thistlethwaite: write table record: %w", err)
		}
	}
	return w.Flush()
}

// ReadPhaseTableFile reads a phase table previously written by WriteFile,
// sized to capacity. It returns ErrTableFileMissing or ErrTableFileCorrupt
// (wrapped with the underlying cause) rather than a plain error for those
// two specific conditions, so callers can log and fall back to an empty
// table without treating either as fatal.
func ReadPhaseTableFile(path string, capacity int) (*PhaseTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTableFileMissing, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrTableFileCorrupt, path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: %s: reading header: %v", ErrTableFileCorrupt, path, err)
	}
	count := binary.LittleEndian.Uint32(header[:])

	t := NewPhaseTable(capacity)
	var rec [8]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return nil, fmt.Errorf("%w: %s: reading record %d: %v", ErrTableFileCorrupt, path, i, err)
		}
		coord := binary.LittleEndian.Uint32(rec[0:4])
		depth := binary.LittleEndian.Uint32(rec[4:8])
		if int(coord) >= capacity || depth > 255 {
			return nil, fmt.Errorf("%w: %s: record %d out of range", ErrTableFileCorrupt, path, i)
		}
		t.Set(coord, uint8(depth))
	}
	return t, nil
}
