package grid_test

import (
	"testing"

	"github.com/herohde/mcgs/pkg/cgt"
	"github.com/herohde/mcgs/pkg/cgt/grid"
	"github.com/stretchr/testify/assert"
)

func TestPointAddAndInBounds(t *testing.T) {
	p := grid.Point{Row: 1, Col: 2}
	q := p.Add(grid.Point{Row: -1, Col: 1})

	assert.Equal(t, grid.Point{Row: 0, Col: 3}, q)
	assert.True(t, q.InBounds(3, 4))
	assert.False(t, q.InBounds(3, 3))
	assert.False(t, grid.Point{Row: -1, Col: 0}.InBounds(3, 4))
}

func TestIndexRowColRoundTrip(t *testing.T) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			idx := grid.Index(r, c, 5)
			r2, c2 := grid.RowCol(idx, 5)
			assert.Equal(t, r, r2)
			assert.Equal(t, c, c2)
		}
	}
}

func TestHashValueStableUnderRotation180(t *testing.T) {
	// A 2x2 board with a single marked cell at (0,0) and its 180-degree
	// rotated counterpart at (1,1) must hash identically under
	// SymmetryMaskRect, since rot180 is always shape-preserving.
	var a, b grid.Hash
	a.Reset(2, 2, grid.SymmetryMaskRect)
	b.Reset(2, 2, grid.SymmetryMaskRect)

	a.Toggle(0, 0, cgt.Black)
	b.Toggle(1, 1, cgt.Black)

	assert.Equal(t, a.Value(), b.Value())
}

func TestHashDistinguishesAsymmetricMarks(t *testing.T) {
	var a, b grid.Hash
	a.Reset(2, 3, grid.SymmetryMaskRect)
	b.Reset(2, 3, grid.SymmetryMaskRect)

	a.Toggle(0, 0, cgt.Black)
	b.Toggle(0, 1, cgt.Black)

	assert.NotEqual(t, a.Value(), b.Value())
}

func TestHashToggleIsSelfInverse(t *testing.T) {
	var h grid.Hash
	h.Reset(3, 3, grid.SymmetryMaskAll)
	h.Toggle(1, 1, cgt.White)
	before := h.Value()

	h.Toggle(0, 2, cgt.Black)
	h.Toggle(0, 2, cgt.Black)

	assert.Equal(t, before, h.Value())
}

func TestHashSnapshotRestore(t *testing.T) {
	var h grid.Hash
	h.Reset(2, 2, grid.SymmetryMaskRect)
	h.Toggle(0, 0, cgt.Black)
	snap := h.Snapshot()

	h.Toggle(1, 1, cgt.White)
	assert.NotEqual(t, snap, h.Snapshot())

	h.Restore(snap)
	assert.Equal(t, snap, h.Snapshot())
}

func TestHashDistinguishesBoardShape(t *testing.T) {
	// A 1x3 strip and a 3x1 strip with no cells toggled must still hash
	// differently: their shapes are folded into positions 0/1 in Reset, so
	// an all-empty board isn't just "the type toggle" regardless of shape.
	var a, b grid.Hash
	a.Reset(1, 3, grid.SymmetryMaskRect)
	b.Reset(3, 1, grid.SymmetryMaskRect)

	assert.NotEqual(t, a.Value(), b.Value())
}

func TestMaskClosedAcceptsPredefinedMasks(t *testing.T) {
	assert.True(t, grid.MaskClosed(grid.SymmetryMaskAll))
	assert.True(t, grid.MaskClosed(grid.SymmetryMaskRect))
	assert.True(t, grid.MaskClosed(grid.SymmetryMaskMirrors))
}

func TestMaskClosedRejectsUnclosedMask(t *testing.T) {
	// Identity + rot90 alone is not closed: rot90 twice is rot180, which the
	// mask does not include.
	unclosed := uint8(1<<0 | 1<<1)
	assert.False(t, grid.MaskClosed(unclosed))

	var h grid.Hash
	assert.Panics(t, func() { h.Reset(2, 2, unclosed) })
}

func TestHashTypeMixedIntoValue(t *testing.T) {
	var a, b grid.Hash
	a.Reset(2, 2, grid.SymmetryMaskRect)
	b.Reset(2, 2, grid.SymmetryMaskRect)

	a.Toggle(0, 0, cgt.Black)
	a.ToggleType(1)

	b.Toggle(0, 0, cgt.Black)
	b.ToggleType(2)

	assert.NotEqual(t, a.Value(), b.Value())
}
