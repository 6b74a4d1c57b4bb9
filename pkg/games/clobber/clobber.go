// Package clobber implements Clobber on a rows x cols grid: a move jumps a
// stone onto an orthogonally adjacent cell held by the opponent, clobbering
// it; the moved-from cell becomes empty.
package clobber

import (
	"strings"

	"github.com/herohde/mcgs/pkg/cgt"
	"github.com/herohde/mcgs/pkg/cgt/grid"
)

// Game is a Clobber position.
type Game struct {
	cgt.Base
	board      []cgt.Color
	rows, cols int
	gh         grid.Hash
}

// New parses a board string with rows separated by '|', each cell 'X'
// (Black), 'O' (White) or '.' (Empty).
func New(s string) *Game {
	rowStrs := strings.Split(s, "|")
	rows := len(rowStrs)
	cols := 0
	if rows > 0 {
		cols = len(rowStrs[0])
	}

	board := make([]cgt.Color, 0, rows*cols)
	for _, row := range rowStrs {
		if len(row) != cols {
			panic("clobber: ragged board")
		}
		for _, r := range row {
			switch r {
			case 'X':
				board = append(board, cgt.Black)
			case 'O':
				board = append(board, cgt.White)
			case '.':
				board = append(board, cgt.Empty)
			default:
				panic("clobber: invalid board character " + string(r))
			}
		}
	}
	return NewBoard(board, rows, cols)
}

// NewBoard takes ownership of board (row-major, rows*cols cells of Black,
// White or Empty).
func NewBoard(board []cgt.Color, rows, cols int) *Game {
	g := &Game{board: board, rows: rows, cols: cols}
	cgt.RegisterType(g, grid.SymmetryMaskRect)
	g.gh.Reset(rows, cols, grid.SymmetryMaskRect)
	return g
}

func (g *Game) Board() []cgt.Color { return g.board }
func (g *Game) Shape() (rows, cols int) { return g.rows, g.cols }

func (g *Game) at(p grid.Point) cgt.Color {
	return g.board[grid.Index(p.Row, p.Col, g.cols)]
}

func (g *Game) Play(m cgt.Move, toPlay cgt.Color) {
	from, to := cgt.UnpackMove2(m)
	opp := toPlay.Opponent()

	if g.board[from] != toPlay || g.board[to] != opp {
		panic("clobber: illegal move")
	}

	g.PushPlay(m, toPlay)

	fr, fc := grid.RowCol(from, g.cols)
	tr, tc := grid.RowCol(to, g.cols)
	g.gh.Toggle(fr, fc, toPlay)
	g.gh.Toggle(tr, tc, opp)
	g.gh.Toggle(fr, fc, cgt.Empty)
	g.gh.Toggle(tr, tc, toPlay)

	g.board[from] = cgt.Empty
	g.board[to] = toPlay
	g.Hash().SetValue(g.gh.Value())
	g.MarkHashUpdated()
}

func (g *Game) UndoMove() {
	mc, toPlay := g.PopPlay()
	from, to := cgt.UnpackMove2(mc)
	opp := toPlay.Opponent()

	fr, fc := grid.RowCol(from, g.cols)
	tr, tc := grid.RowCol(to, g.cols)
	g.gh.Toggle(fr, fc, cgt.Empty)
	g.gh.Toggle(tr, tc, toPlay)
	g.gh.Toggle(fr, fc, toPlay)
	g.gh.Toggle(tr, tc, opp)

	g.board[from] = toPlay
	g.board[to] = opp
	g.Hash().SetValue(g.gh.Value())
	g.MarkHashUpdated()
}

func (g *Game) InitHash(h *cgt.LocalHash) {
	g.gh.Reset(g.rows, g.cols, grid.SymmetryMaskRect)
	for i, v := range g.board {
		r, c := grid.RowCol(i, g.cols)
		g.gh.Toggle(r, c, v)
	}
	g.gh.ToggleType(cgt.TypeOf(g).ID)
	h.SetValue(g.gh.Value())
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
	return NewBoard(inv, g.rows, g.cols)
}

// CreateMoveGenerator yields every (from, to) where from holds toPlay's
// color and the orthogonally adjacent to holds the opponent's.
func (g *Game) CreateMoveGenerator(toPlay cgt.Color) cgt.MoveGenerator {
	gen := &moveGenerator{game: g, toPlay: toPlay, from: -1}
	gen.advance()
	return gen
}

type moveGenerator struct {
	game    *Game
	toPlay  cgt.Color
	from    int
	dirIdx  int
	current cgt.Move
	has     bool
}

func (gen *moveGenerator) advance() {
	g := gen.game
	opp := gen.toPlay.Opponent()
	n := len(g.board)

	if gen.from < 0 {
		gen.from = 0
		gen.dirIdx = 0
	} else {
		gen.dirIdx++
	}

	for gen.from < n {
		fr, fc := grid.RowCol(gen.from, g.cols)
		for gen.dirIdx < len(grid.Neighbours4) {
			if g.board[gen.from] == gen.toPlay {
				np := grid.Point{Row: fr, Col: fc}.Add(grid.Neighbours4[gen.dirIdx])
				if np.InBounds(g.rows, g.cols) {
					to := grid.Index(np.Row, np.Col, g.cols)
					if g.board[to] == opp {
						gen.current = cgt.CreateMove2(gen.from, to)
						gen.has = true
						return
					}
				}
			}
			gen.dirIdx++
		}
		gen.dirIdx = 0
		gen.from++
	}
	gen.has = false
}

func (gen *moveGenerator) HasMove() bool { return gen.has }
func (gen *moveGenerator) Advance() { gen.advance() }
func (gen *moveGenerator) CurrentMove() cgt.Move { return gen.current }

func (g *Game) Print() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteString(cgt.RowSep.String())
		}
		for c := 0; c < g.cols; c++ {
			sb.WriteString(g.board[grid.Index(r, c, g.cols)].String())
		}
	}
	return sb.String()
}

func (g *Game) PrintMove(m cgt.Move) string {
	from, to := cgt.UnpackMove2(m)
	fr, fc := grid.RowCol(from, g.cols)
	tr, tc := grid.RowCol(to, g.cols)
	return pointString(fr, fc) + "-" + pointString(tr, tc)
}

func pointString(r, c int) string {
	return string(rune('a'+c)) + string(rune('1'+r))
}
