package cgt_test

import (
	"testing"

	"github.com/herohde/mcgs/pkg/cgt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove1RoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, -1, 100, -100} {
		m := cgt.CreateMove1(v)
		assert.Equal(t, v, cgt.UnpackMove1(m))
	}
}

func TestMove2RoundTrip(t *testing.T) {
	m := cgt.CreateMove2(-123, 456)
	p1, p2 := cgt.UnpackMove2(m)
	assert.Equal(t, -123, p1)
	assert.Equal(t, 456, p2)
}

func TestMove3RoundTrip(t *testing.T) {
	m := cgt.CreateMove3(-1000, 900, 1000)
	p1, p2, p3 := cgt.UnpackMove3(m)
	assert.Equal(t, -1000, p1)
	assert.Equal(t, 900, p2)
	assert.Equal(t, 1000, p3)
}

// Per-part exhaustive-range round-trip tests: unpack(create(parts)) == parts.
// A full cartesian product over every layout's parts is infeasible (move1
// alone has 2^31 values), so one part's entire legal range is iterated at a
// time while its sibling parts are held at fixed values: every part of
// move3, and the first and last parts of move4 and move6. The move3
// first-part loop also checks that bit 31 of the created move stays 0.

func TestMove3RoundTripExhaustivePerPart(t *testing.T) {
	for p1 := -1024; p1 <= 1023; p1++ {
		m := cgt.CreateMove3(p1, 7, 9)
		got1, got2, got3 := cgt.UnpackMove3(m)
		require.Equal(t, p1, got1)
		require.Equal(t, 7, got2)
		require.Equal(t, 9, got3)
		require.Zero(t, uint32(m)&(1<<31))
	}
	for p2 := 0; p2 <= 1023; p2++ {
		m := cgt.CreateMove3(-5, p2, 9)
		got1, got2, got3 := cgt.UnpackMove3(m)
		require.Equal(t, -5, got1)
		require.Equal(t, p2, got2)
		require.Equal(t, 9, got3)
	}
	for p3 := 0; p3 <= 1023; p3++ {
		m := cgt.CreateMove3(-5, 7, p3)
		got1, got2, got3 := cgt.UnpackMove3(m)
		require.Equal(t, -5, got1)
		require.Equal(t, 7, got2)
		require.Equal(t, p3, got3)
	}
}

func TestMove4RoundTripExhaustivePerPart(t *testing.T) {
	for p1 := -128; p1 <= 127; p1++ {
		m := cgt.CreateMove4(p1, 3, -4, 5)
		got1, got2, got3, got4 := cgt.UnpackMove4(m)
		require.Equal(t, p1, got1)
		require.Equal(t, 3, got2)
		require.Equal(t, -4, got3)
		require.Equal(t, 5, got4)
	}
	for p4 := 0; p4 <= 127; p4++ {
		m := cgt.CreateMove4(-1, 2, -3, p4)
		got1, got2, got3, got4 := cgt.UnpackMove4(m)
		require.Equal(t, -1, got1)
		require.Equal(t, 2, got2)
		require.Equal(t, -3, got3)
		require.Equal(t, p4, got4)
	}
}

func TestMove6RoundTripExhaustivePerPart(t *testing.T) {
	for p1 := -32; p1 <= 31; p1++ {
		m := cgt.CreateMove6(p1, 1, 2, 3, 4, 5)
		got1, got2, got3, got4, got5, got6 := cgt.UnpackMove6(m)
		require.Equal(t, p1, got1)
		require.Equal(t, 1, got2)
		require.Equal(t, 2, got3)
		require.Equal(t, 3, got4)
		require.Equal(t, 4, got5)
		require.Equal(t, 5, got6)
	}
	for p6 := 0; p6 <= 31; p6++ {
		m := cgt.CreateMove6(-10, 1, 2, 3, 4, p6)
		_, _, _, _, _, got6 := cgt.UnpackMove6(m)
		require.Equal(t, p6, got6)
	}
}

func TestMove4RoundTrip(t *testing.T) {
	m := cgt.CreateMove4(-1, 2, -3, 4)
	p1, p2, p3, p4 := cgt.UnpackMove4(m)
	assert.Equal(t, -1, p1)
	assert.Equal(t, 2, p2)
	assert.Equal(t, -3, p3)
	assert.Equal(t, 4, p4)
}

func TestMove6RoundTrip(t *testing.T) {
	m := cgt.CreateMove6(-10, 1, 2, 3, 4, 5)
	p1, p2, p3, p4, p5, p6 := cgt.UnpackMove6(m)
	assert.Equal(t, -10, p1)
	assert.Equal(t, 1, p2)
	assert.Equal(t, 2, p3)
	assert.Equal(t, 3, p4)
	assert.Equal(t, 4, p5)
	assert.Equal(t, 5, p6)
}

func TestMoveColor(t *testing.T) {
	m := cgt.CreateMove2(1, 2)

	white := cgt.SetColor(m, cgt.White)
	assert.Equal(t, cgt.White, cgt.GetColor(white))
	assert.Equal(t, m, cgt.RemoveColor(white))

	black := cgt.SetColor(m, cgt.Black)
	assert.Equal(t, cgt.Black, cgt.GetColor(black))
	assert.Equal(t, m, cgt.RemoveColor(black))
}

func TestSetColorRejectsAlreadyColored(t *testing.T) {
	// A White coloring sets bit 31, so any further SetColor must refuse. A
	// Black coloring leaves bit 31 clear and cannot be told apart from an
	// uncolored payload.
	m := cgt.SetColor(cgt.CreateMove1(1), cgt.White)
	assert.Panics(t, func() { cgt.SetColor(m, cgt.Black) })
}
