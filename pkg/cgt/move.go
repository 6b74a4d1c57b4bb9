package cgt

import "fmt"

// Move is a 32-bit packed move value. Bit 31 is the color bit (0 = Black,
// 1 = White); bits 0..30 carry up to six packed subfields per a predefined
// layout. The zero move is a legal move pattern -- emptiness is tracked by
// the containing move stack, not by the value.
type Move uint32

const colorBitIdx = 31
const colorBitMask = uint32(1) << colorBitIdx

// part describes one packed subfield: its bit width and signedness.
type part struct {
	width  int
	signed bool
}

// layout describes the packed subfields of an N-part move, in bit order
// starting at bit 0.
type layout []part

func (l layout) shift(i int) int {
	s := 0
	for j := 0; j < i; j++ {
		s += l[j].width
	}
	return s
}

func (l layout) totalBits() int {
	return l.shift(len(l))
}

var (
	move1Layout = layout{{31, true}}
	move2Layout = layout{{16, true}, {15, false}}
	move3Layout = layout{{11, true}, {10, false}, {10, false}}
	move4Layout = layout{{8, true}, {8, true}, {8, true}, {7, false}}
	move6Layout = layout{{6, true}, {5, false}, {5, false}, {5, false}, {5, false}, {5, false}}
)

func init() {
	for _, l := range []layout{move1Layout, move2Layout, move3Layout, move4Layout, move6Layout} {
		if t := l.totalBits(); t < 2 || t > MaxBits {
			panic(fmt.Sprintf("cgt: move layout %v has illegal total width %v", l, t))
		}
	}
}

func setPart(m *Move, l layout, i int, v int) {
	p := l[i]
	shift := l.shift(i)
	mask := valueMask(p.width) << uint(shift)
	*m = Move((uint32(*m) &^ uint32(mask)) | (shrink(v, p.width, p.signed) << uint(shift)))
}

func getPart(m Move, l layout, i int) int {
	p := l[i]
	shift := l.shift(i)
	bits := (uint32(m) >> uint(shift)) & valueMask(p.width)
	return expand(bits, p.width, p.signed)
}

// CreateMove1 packs a single signed 31-bit field into a move.
func CreateMove1(p1 int) Move {
	var m Move
	setPart(&m, move1Layout, 0, p1)
	return m
}

// UnpackMove1 decodes a move created by CreateMove1.
func UnpackMove1(m Move) (p1 int) {
	return getPart(m, move1Layout, 0)
}

// CreateMove2 packs a signed 16-bit field and an unsigned 15-bit field.
func CreateMove2(p1, p2 int) Move {
	var m Move
	setPart(&m, move2Layout, 0, p1)
	setPart(&m, move2Layout, 1, p2)
	return m
}

// UnpackMove2 decodes a move created by CreateMove2.
func UnpackMove2(m Move) (p1, p2 int) {
	return getPart(m, move2Layout, 0), getPart(m, move2Layout, 1)
}

// CreateMove3 packs a signed 11-bit field and two unsigned 10-bit fields.
func CreateMove3(p1, p2, p3 int) Move {
	var m Move
	setPart(&m, move3Layout, 0, p1)
	setPart(&m, move3Layout, 1, p2)
	setPart(&m, move3Layout, 2, p3)
	return m
}

// UnpackMove3 decodes a move created by CreateMove3.
func UnpackMove3(m Move) (p1, p2, p3 int) {
	return getPart(m, move3Layout, 0), getPart(m, move3Layout, 1), getPart(m, move3Layout, 2)
}

// CreateMove4 packs three signed 8-bit fields and an unsigned 7-bit field.
// Typical use: two (row, col) coordinate pairs.
func CreateMove4(p1, p2, p3, p4 int) Move {
	var m Move
	setPart(&m, move4Layout, 0, p1)
	setPart(&m, move4Layout, 1, p2)
	setPart(&m, move4Layout, 2, p3)
	setPart(&m, move4Layout, 3, p4)
	return m
}

// UnpackMove4 decodes a move created by CreateMove4.
func UnpackMove4(m Move) (p1, p2, p3, p4 int) {
	return getPart(m, move4Layout, 0), getPart(m, move4Layout, 1), getPart(m, move4Layout, 2), getPart(m, move4Layout, 3)
}

// CreateMove6 packs a signed 6-bit field and five unsigned 5-bit fields.
// Typical use: three (row, col) coordinate pairs, as in Amazons.
func CreateMove6(p1, p2, p3, p4, p5, p6 int) Move {
	var m Move
	setPart(&m, move6Layout, 0, p1)
	setPart(&m, move6Layout, 1, p2)
	setPart(&m, move6Layout, 2, p3)
	setPart(&m, move6Layout, 3, p4)
	setPart(&m, move6Layout, 4, p5)
	setPart(&m, move6Layout, 5, p6)
	return m
}

// UnpackMove6 decodes a move created by CreateMove6.
func UnpackMove6(m Move) (p1, p2, p3, p4, p5, p6 int) {
	return getPart(m, move6Layout, 0), getPart(m, move6Layout, 1), getPart(m, move6Layout, 2),
		getPart(m, move6Layout, 3), getPart(m, move6Layout, 4), getPart(m, move6Layout, 5)
}

// SetColor attaches a player color to a move. Requires the color bit and the
// payload's bit 31 to both be clear.
func SetColor(m Move, c Color) Move {
	if !c.IsPlayer() {
		panic(fmt.Sprintf("cgt: invalid move color %v", c))
	}
	if uint32(m)&colorBitMask != 0 {
		panic("cgt: move already has a color bit set")
	}
	return Move(uint32(m) | (uint32(c) << colorBitIdx))
}

// GetColor reads the color bit of a move produced by SetColor.
func GetColor(m Move) Color {
	if uint32(m)&colorBitMask != 0 {
		return White
	}
	return Black
}

// RemoveColor clears the color bit, recovering the original payload.
func RemoveColor(m Move) Move {
	return Move(uint32(m) &^ colorBitMask)
}

func (m Move) String() string {
	return fmt.Sprintf("move(%#x)", uint32(m))
}
