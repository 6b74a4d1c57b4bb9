package grid

import (
	"fmt"

	"github.com/herohde/mcgs/pkg/cgt"
)

// Hash composes 8 oriented cgt.LocalHash accumulators -- one per symmetry of
// the square, a subset active per SymmetryMaskAll/Rect/Mirrors -- into one
// symmetry-canonical value: the minimum across the active orientations. Two
// boards that are reflections/rotations of one another hash identically.
type Hash struct {
	oriented   [numOrientations]cgt.LocalHash
	active     uint8
	rows, cols int
}

// Reset sets the board shape and active symmetry mask, clears all oriented
// accumulators to their neutral element, and folds each orientation's
// post-transform shape into its accumulator at reserved positions 0 (rows)
// and 1 (cols), so that two boards of different shape never collide on cell
// toggles alone.
func (h *Hash) Reset(rows, cols int, symmetryMask uint8) {
	if symmetryMask == 0 || !MaskClosed(symmetryMask) {
		panic(fmt.Sprintf("grid: symmetry mask %#x is not closed under composition", symmetryMask))
	}
	h.rows, h.cols = rows, cols
	h.active = symmetryMask
	for o := range h.oriented {
		h.oriented[o].Reset()
		if h.active&(1<<uint(o)) == 0 {
			continue
		}
		_, _, rows2, cols2 := orientations[o](0, 0, h.rows, h.cols)
		h.oriented[o].Toggle(0, rows2)
		h.oriented[o].Toggle(1, cols2)
	}
}

// Toggle XORs value into every active oriented accumulator, at the
// coordinate (r, c) transformed into that orientation's frame, offset by 2
// so positions 0 and 1 stay reserved for the shape toggled in Reset.
func (h *Hash) Toggle(r, c int, value any) {
	for o := 0; o < numOrientations; o++ {
		if h.active&(1<<uint(o)) == 0 {
			continue
		}
		r2, c2, _, cols2 := orientations[o](r, c, h.rows, h.cols)
		h.oriented[o].Toggle(2+Index(r2, c2, cols2), value)
	}
}

// ToggleType mixes a type id into every active oriented accumulator.
func (h *Hash) ToggleType(typeID int) {
	for o := 0; o < numOrientations; o++ {
		if h.active&(1<<uint(o)) == 0 {
			continue
		}
		h.oriented[o].ToggleType(typeID)
	}
}

// Value returns the symmetry-canonical hash: the minimum value across the
// active oriented accumulators.
func (h *Hash) Value() uint64 {
	var (
		min   uint64
		first = true
	)
	for o := 0; o < numOrientations; o++ {
		if h.active&(1<<uint(o)) == 0 {
			continue
		}
		v := h.oriented[o].Value()
		if first || v < min {
			min = v
			first = false
		}
	}
	return min
}

// Snapshot captures every oriented accumulator's raw value, for a cheap
// Restore instead of replaying inverse toggles on undo.
func (h *Hash) Snapshot() [numOrientations]uint64 {
	var s [numOrientations]uint64
	for i := range h.oriented {
		s[i] = h.oriented[i].Value()
	}
	return s
}

// Restore sets every oriented accumulator back to a prior Snapshot.
func (h *Hash) Restore(s [numOrientations]uint64) {
	for i := range h.oriented {
		h.oriented[i].SetValue(s[i])
	}
}
