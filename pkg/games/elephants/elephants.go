// Package elephants implements Elephants & Rhinos on a 1xn strip: each turn
// a player slides one of their own stones one cell towards the opponent's
// side (Black rightward, White leftward) onto an adjacent empty cell. A
// player with no such stone loses.
package elephants

import (
	"strconv"
	"strings"

	"github.com/herohde/mcgs/pkg/cgt"
)

// Game is an Elephants & Rhinos position.
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
			panic("elephants: invalid board character " + string(r))
		}
	}
	return NewBoard(board)
}

// NewBoard takes ownership of board.
func NewBoard(board []cgt.Color) *Game {
	return &Game{board: board}
}

func (g *Game) Board() []cgt.Color { return g.board }

// dir is the direction a stone of color c advances: Black moves right (+1),
// White moves left (-1).
func dir(c cgt.Color) int {
	if c == cgt.Black {
		return 1
	}
	return -1
}

func (g *Game) Play(m cgt.Move, toPlay cgt.Color) {
	from, to := cgt.UnpackMove2(m)
	if g.board[from] != toPlay || g.board[to] != cgt.Empty || to-from != dir(toPlay) {
		panic("elephants: illegal move")
	}

	g.PushPlay(m, toPlay)

	h := g.Hash()
	h.Toggle(from, toPlay)
	h.Toggle(to, cgt.Empty)
	h.Toggle(from, cgt.Empty)
	h.Toggle(to, toPlay)

	g.board[from] = cgt.Empty
	g.board[to] = toPlay
	g.MarkHashUpdated()
}

func (g *Game) UndoMove() {
	mc, toPlay := g.PopPlay()
	from, to := cgt.UnpackMove2(mc)

	h := g.Hash()
	h.Toggle(from, cgt.Empty)
	h.Toggle(to, toPlay)
	h.Toggle(from, toPlay)
	h.Toggle(to, cgt.Empty)

	g.board[from] = toPlay
	g.board[to] = cgt.Empty
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

// Inverse swaps colors and mirrors the strip, since Black moving right
// becomes White moving left only under both a color swap and a reversal.
func (g *Game) Inverse() cgt.Game {
	n := len(g.board)
	inv := make([]cgt.Color, n)
	for i, v := range g.board {
		var sw cgt.Color
		switch v {
		case cgt.Black:
			sw = cgt.White
		case cgt.White:
			sw = cgt.Black
		default:
			sw = v
		}
		inv[n-1-i] = sw
	}
	return NewBoard(inv)
}

// CreateMoveGenerator scans from the edge toPlay advances from (Black from
// the left, White from the right) for a stone with an empty cell ahead.
func (g *Game) CreateMoveGenerator(toPlay cgt.Color) cgt.MoveGenerator {
	d := dir(toPlay)
	start := 0
	if toPlay == cgt.White {
		start = len(g.board) - 1
	}
	gen := &moveGenerator{game: g, toPlay: toPlay, dir: d, idx: start - d}
	gen.advance()
	return gen
}

type moveGenerator struct {
	game   *Game
	toPlay cgt.Color
	dir    int
	idx    int
}

func (gen *moveGenerator) inRange(i int) bool {
	return i >= 0 && i < len(gen.game.board)
}

func (gen *moveGenerator) isMove(from, to int) bool {
	return gen.inRange(from) && gen.inRange(to) &&
		gen.game.board[from] == gen.toPlay && gen.game.board[to] == cgt.Empty
}

func (gen *moveGenerator) advance() {
	for {
		gen.idx += gen.dir
		if !gen.inRange(gen.idx) {
			return
		}
		if gen.isMove(gen.idx, gen.idx+gen.dir) {
			return
		}
	}
}

func (gen *moveGenerator) HasMove() bool { return gen.inRange(gen.idx) }
func (gen *moveGenerator) Advance() { gen.advance() }
func (gen *moveGenerator) CurrentMove() cgt.Move {
	return cgt.CreateMove2(gen.idx, gen.idx+gen.dir)
}

// rng is a half-open [start, start+length) slice of the strip.
type rng struct {
	start, length int
}

// subgameRanges scans for the two separations the race admits: an "XO" wall,
// where the two stones block each other forever and both are dropped, and an
// "O..X" gap, where the stones move apart so the empties between them can
// never be entered -- the strip divides after the O, and the X starts the
// remainder.
func subgameRanges(board []cgt.Color) []rng {
	n := len(board)
	if n == 0 {
		return nil
	}

	var ranges []rng
	chunkStart := 0
	seenBlack, seenWhite := false, false
	lastBlack, lastWhite := 0, 0

	for i, color := range board {
		switch color {
		case cgt.Black:
			lastBlack = i
			seenBlack = true
		case cgt.White:
			lastWhite = i
			seenWhite = true
		}

		if !(seenBlack && seenWhite) {
			continue
		}

		if lastBlack+1 == lastWhite {
			// XO wall: drop both stones.
			ranges = append(ranges, rng{chunkStart, lastBlack - chunkStart})
			chunkStart = i + 1
			seenBlack, seenWhite = false, false
			continue
		}

		if lastWhite < lastBlack {
			// O..X gap: the O closes the left piece, the X opens the next.
			ranges = append(ranges, rng{chunkStart, lastWhite - chunkStart + 1})
			chunkStart = i
			seenWhite = false
		}
	}

	if chunkStart < n && (seenBlack || seenWhite) {
		ranges = append(ranges, rng{chunkStart, n - chunkStart})
	}
	return ranges
}

// refineRange prunes cells that can never matter again: leading White stones
// and trailing Black stones (already run off their end of the strip), then
// leading empties ahead of a Black stone and trailing empties behind a White
// one (never entered, since stones only move away from them). Reports false
// if nothing playable remains -- no stones, or stones with no empty at all.
func refineRange(board []cgt.Color, r rng) (rng, bool) {
	if len(board) == 0 || r.length == 0 {
		return r, false
	}

	for r.length > 0 && board[r.start] == cgt.White {
		r.start++
		r.length--
	}
	for r.length > 0 && board[r.start+r.length-1] == cgt.Black {
		r.length--
	}

	pruneLeft := 0
	for i := r.start; i < r.start+r.length; i++ {
		if board[i] == cgt.Empty {
			pruneLeft++
			continue
		}
		if board[i] == cgt.White {
			pruneLeft = 0
		}
		break
	}
	pruneRight := 0
	for i := r.start + r.length - 1; i >= r.start; i-- {
		if board[i] == cgt.Empty {
			pruneRight++
			continue
		}
		if board[i] == cgt.Black {
			pruneRight = 0
		}
		break
	}

	if pruneLeft == r.length {
		return rng{}, false
	}
	r.start += pruneLeft
	r.length -= pruneLeft + pruneRight

	hasColor, hasEmpty := false, false
	for i := r.start; i < r.start+r.length; i++ {
		if board[i] == cgt.Empty {
			hasEmpty = true
		} else {
			hasColor = true
		}
	}
	if !hasColor || !hasEmpty {
		return rng{}, false
	}
	return r, true
}

// liveRanges returns the refined sub-game ranges that still hold a playable
// position.
func liveRanges(board []cgt.Color) []rng {
	var filtered []rng
	for _, r := range subgameRanges(board) {
		if refined, ok := refineRange(board, r); ok {
			filtered = append(filtered, refined)
		}
	}
	return filtered
}

// Split decomposes the strip at XO walls and O..X gaps into its live pieces.
// Fewer than two live pieces is reported as no split; Normalize handles the
// pruning in that case.
func (g *Game) Split() cgt.SplitResult {
	if len(g.board) == 0 {
		return cgt.NoSplit()
	}

	filtered := liveRanges(g.board)
	if len(filtered) < 2 {
		return cgt.NoSplit()
	}

	pieces := make([]cgt.Game, len(filtered))
	for i, r := range filtered {
		sub := make([]cgt.Color, r.length)
		copy(sub, g.board[r.start:r.start+r.length])
		pieces[i] = NewBoard(sub)
	}
	return cgt.Replace(pieces...)
}

// Normalize stitches the live ranges back into one strip, dropping every dead
// cell. Adjacent pieces are kept apart by an XO wall unless their boundary
// stones have opposite colors; after pruning that is an O ending one piece
// next to an X starting the next, two stones that move apart and never meet.
func (g *Game) Normalize() {
	g.PushNormalize()

	filtered := liveRanges(g.board)
	if len(filtered) == 1 && filtered[0].start == 0 && filtered[0].length == len(g.board) {
		g.normSaved = append(g.normSaved, normEntry{changed: false})
		g.MarkHashUpdated()
		return
	}

	next := make([]cgt.Color, 0, len(g.board))
	for i, r := range filtered {
		next = append(next, g.board[r.start:r.start+r.length]...)

		if i+1 < len(filtered) {
			left := g.board[r.start+r.length-1]
			right := g.board[filtered[i+1].start]
			haveBlack := left == cgt.Black || right == cgt.Black
			haveWhite := left == cgt.White || right == cgt.White
			if !(haveBlack && haveWhite) {
				next = append(next, cgt.Black, cgt.White)
			}
		}
	}

	g.normSaved = append(g.normSaved, normEntry{changed: true, board: g.board})
	g.board = next
}

// UndoNormalize exactly reverses the most recent Normalize.
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

func (g *Game) Print() string {
	var sb strings.Builder
	for _, v := range g.board {
		sb.WriteString(v.String())
	}
	return sb.String()
}

func (g *Game) PrintMove(m cgt.Move) string {
	from, to := cgt.UnpackMove2(m)
	return strconv.Itoa(from) + "-" + strconv.Itoa(to)
}
