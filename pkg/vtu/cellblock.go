package vtu

import (
	"fmt"

	"github.com/philipparndt/govtu/pkg/cell"
)

// CellBlock holds the cell topology of an unstructured grid. Cell i spans
// Connectivity[Offsets[i-1]:Offsets[i]], with Offsets[-1] taken as 0.
type CellBlock struct {
	Connectivity []int64
	Offsets      []int64
	Types        []cell.Type
}

// Len returns the number of cells.
func (b *CellBlock) Len() int {
	return len(b.Types)
}

// Cell returns the type and point-index window of cell i. The window aliases
// Connectivity and must not be modified.
func (b *CellBlock) Cell(i int) (cell.Type, []int64) {
	start := int64(0)
	if i > 0 {
		start = b.Offsets[i-1]
	}
	return b.Types[i], b.Connectivity[start:b.Offsets[i]]
}

// Validate checks the block invariants against a mesh of pointCount points:
// one offset per type, non-decreasing offsets ending at the connectivity
// length, and every point index in [0, pointCount).
func (b *CellBlock) Validate(pointCount int) error {
	if len(b.Offsets) != len(b.Types) {
		return fmt.Errorf("%d offsets for %d cell types", len(b.Offsets), len(b.Types))
	}

	prev := int64(0)
	for i, off := range b.Offsets {
		if off < prev {
			return fmt.Errorf("offset %d of cell %d is below the previous offset %d", off, i, prev)
		}
		prev = off
	}
	if prev != int64(len(b.Connectivity)) {
		return fmt.Errorf("last offset %d does not match connectivity length %d", prev, len(b.Connectivity))
	}

	for i, id := range b.Connectivity {
		if id < 0 || id >= int64(pointCount) {
			return fmt.Errorf("connectivity[%d] = %d is outside [0, %d)", i, id, pointCount)
		}
	}
	return nil
}
