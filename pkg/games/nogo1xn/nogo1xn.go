// Package nogo1xn implements NoGo played on a 1xn strip: players alternately
// place a stone of their color on an empty cell, and a move is legal only if
// afterwards every block (a maximal contiguous run of one color, the mover's
// or the opponent's) still has an empty neighbour somewhere along it: a
// player may neither fill their own block's last liberty nor take an
// opponent block's last liberty.
package nogo1xn

import (
	"strconv"
	"strings"

	"github.com/herohde/mcgs/pkg/cgt"
)

// Game is a NoGo position on a 1xn strip.
type Game struct {
	cgt.Base
	board []cgt.Color

	normSaved []normEntry
}

type normEntry struct {
	changed bool
	board   []cgt.Color
}

// New parses a board string of 'X' (Black), 'O' (White) and '.' (Empty).
func New(s string) *Game {
	board := make([]cgt.Color, len(s))
	for i, r := range s {
		switch r {
		case 'X':
			board[i] = cgt.Black
		case 'O':
			board[i] = cgt.White
		case '.':
			board[i] = cgt.Empty
		default:
			panic("nogo1xn: invalid board character " + string(r))
		}
	}
	return NewBoard(board)
}

// NewBoard takes ownership of board, which must contain only Black, White
// and Empty cells.
func NewBoard(board []cgt.Color) *Game {
	return &Game{board: board}
}

func (g *Game) Board() []cgt.Color { return g.board }

func (g *Game) Play(m cgt.Move, toPlay cgt.Color) {
	pos := cgt.UnpackMove1(m)
	if g.board[pos] != cgt.Empty {
		panic("nogo1xn: play on occupied cell")
	}

	g.PushPlay(m, toPlay)
	h := g.Hash()
	h.Toggle(pos, cgt.Empty)
	h.Toggle(pos, toPlay)
	g.board[pos] = toPlay
	g.MarkHashUpdated()
}

func (g *Game) UndoMove() {
	mc, player := g.PopPlay()
	pos := cgt.UnpackMove1(mc)

	h := g.Hash()
	h.Toggle(pos, player)
	h.Toggle(pos, cgt.Empty)
	g.board[pos] = cgt.Empty
	g.MarkHashUpdated()
}

func (g *Game) InitHash(h *cgt.LocalHash) {
	for i, v := range g.board {
		h.Toggle(i, v)
	}
	h.ToggleType(cgt.TypeOf(g).ID)
}

func (g *Game) GetLocalHash() uint64 {
	return g.ComputeLocalHash(g)
}

func (g *Game) Inverse() cgt.Game {
	inv := make([]cgt.Color, len(g.board))
	for i, v := range g.board {
		switch v {
		case cgt.Black:
			inv[i] = cgt.White
		case cgt.White:
			inv[i] = cgt.Black
		default:
			inv[i] = v
		}
	}
	return NewBoard(inv)
}

// CreateMoveGenerator yields every empty cell whose placement leaves no block
// of either color without a liberty (an adjacent empty cell anywhere along
// the block), the NoGo legality rule.
func (g *Game) CreateMoveGenerator(toPlay cgt.Color) cgt.MoveGenerator {
	gen := &moveGenerator{game: g, toPlay: toPlay, current: -1}
	gen.advance()
	return gen
}

func (g *Game) at(p int, toPlay cgt.Color, hypothetical int) cgt.Color {
	if p == hypothetical {
		return toPlay
	}
	return g.board[p]
}

func (g *Game) isLegalPlacement(p int, toPlay cgt.Color) bool {
	if g.board[p] != cgt.Empty {
		return false
	}

	n := len(g.board)
	hasLiberty := false
	previous := toPlay
	if p != 0 {
		previous = g.board[0]
	}
	if previous == cgt.Empty {
		hasLiberty = true
	}

	for i := 1; i < n; i++ {
		current := g.at(i, toPlay, p)
		if current == cgt.Empty {
			hasLiberty = true
		} else if current != previous && previous != cgt.Empty {
			if hasLiberty {
				hasLiberty = false
			} else {
				return false
			}
		}
		previous = current
	}
	return hasLiberty
}

type moveGenerator struct {
	game    *Game
	toPlay  cgt.Color
	current int
}

func (gen *moveGenerator) advance() {
	n := len(gen.game.board)
	for {
		gen.current++
		if gen.current >= n {
			return
		}
		if gen.game.isLegalPlacement(gen.current, gen.toPlay) {
			return
		}
	}
}

func (gen *moveGenerator) HasMove() bool { return gen.current < len(gen.game.board) }
func (gen *moveGenerator) Advance() { gen.advance() }
func (gen *moveGenerator) CurrentMove() cgt.Move { return cgt.CreateMove1(gen.current) }

// blockSimplify collapses every maximal run of a single color (Black or
// White) to a single cell, keeping every Empty cell as a separator.
func blockSimplify(board []cgt.Color) []cgt.Color {
	out := make([]cgt.Color, 0, len(board))
	prev := cgt.Empty
	for _, v := range board {
		if v == cgt.Empty || v != prev {
			out = append(out, v)
		}
		prev = v
	}
	return out
}

// isDeadSeparator reports whether the empty cell at i in a block-simplified
// strip separates two opposite-colored blocks that are both blocked on their
// far sides. Neither player can ever place there (either color forms a
// libertyless block or strips the neighbour's last liberty), and the cell
// stays the sole, permanent liberty of both neighbours, so no legal move
// elsewhere on the strip depends on it.
func isDeadSeparator(s []cgt.Color, i int) bool {
	n := len(s)
	if i == 0 || i == n-1 {
		return false
	}
	left, right := s[i-1], s[i+1]
	if !left.IsPlayer() || right != left.Opponent() {
		return false
	}
	if i-2 >= 0 && s[i-2] == cgt.Empty {
		return false
	}
	if i+2 < n && s[i+2] == cgt.Empty {
		return false
	}
	return true
}

// Split implements the "XO split" rule: after block-simplifying, the strip
// decomposes into independent sub-games at every point where two
// different-colored blocks touch directly, and at every dead separator cell,
// which is dropped entirely.
func (g *Game) Split() cgt.SplitResult {
	if len(g.board) == 0 {
		return cgt.NoSplit()
	}

	simplified := blockSimplify(g.board)
	n := len(simplified)

	var ranges [][2]int
	start := 0
	for i := 0; i < n; i++ {
		color := simplified[i]
		prev := cgt.Empty
		if i > 0 {
			prev = simplified[i-1]
		}
		switch {
		case color != cgt.Empty && prev == color.Opponent():
			ranges = append(ranges, [2]int{start, i - start})
			start = i
		case color == cgt.Empty && isDeadSeparator(simplified, i):
			ranges = append(ranges, [2]int{start, i - start})
			start = i + 1
		}
	}
	ranges = append(ranges, [2]int{start, n - start})

	if len(ranges) < 2 {
		return cgt.NoSplit()
	}

	pieces := make([]cgt.Game, len(ranges))
	for i, r := range ranges {
		sub := make([]cgt.Color, r[1])
		copy(sub, simplified[r[0]:r[0]+r[1]])
		pieces[i] = NewBoard(sub)
	}
	return cgt.Replace(pieces...)
}

// shouldMirror reports whether the reversed board is lexicographically
// smaller, by cell ordinal, than the board itself.
func shouldMirror(board []cgt.Color) bool {
	n := len(board)
	for i := 0; i < n/2+1 && i < n; i++ {
		a, b := board[i], board[n-1-i]
		if a != b {
			return b < a
		}
	}
	return false
}

func reversed(board []cgt.Color) []cgt.Color {
	out := make([]cgt.Color, len(board))
	for i, v := range board {
		out[len(board)-1-i] = v
	}
	return out
}

func (g *Game) Normalize() {
	g.PushNormalize()

	simplified := blockSimplify(g.board)
	changed := len(simplified) != len(g.board)
	if shouldMirror(simplified) {
		simplified = reversed(simplified)
		changed = true
	}

	if !changed {
		g.normSaved = append(g.normSaved, normEntry{changed: false})
		g.MarkHashUpdated()
		return
	}

	g.normSaved = append(g.normSaved, normEntry{changed: true, board: g.board})
	g.board = simplified
}

func (g *Game) UndoNormalize() {
	g.PopNormalize()

	n := len(g.normSaved)
	e := g.normSaved[n-1]
	g.normSaved = g.normSaved[:n-1]

	if !e.changed {
		g.MarkHashUpdated()
		return
	}
	g.board = e.board
}

func (g *Game) Order(other cgt.Game) cgt.Relation {
	o, ok := other.(*Game)
	if !ok {
		return cgt.RelUnknown
	}
	n := len(g.board)
	if n != len(o.board) {
		if n < len(o.board) {
			return cgt.RelLess
		}
		return cgt.RelGreater
	}
	for i := range g.board {
		if g.board[i] != o.board[i] {
			if g.board[i] < o.board[i] {
				return cgt.RelLess
			}
			return cgt.RelGreater
		}
	}
	return cgt.RelEqual
}

func (g *Game) Print() string {
	var sb strings.Builder
	for _, v := range g.board {
		sb.WriteString(v.String())
	}
	return sb.String()
}

func (g *Game) PrintMove(m cgt.Move) string {
	return strconv.Itoa(cgt.UnpackMove1(m))
}
