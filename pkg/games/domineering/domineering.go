// Package domineering implements Domineering on a rows x cols grid with
// optional permanently-blocked cells: Black places vertical dominoes,
// White places horizontal ones, and a player with no legal placement loses.
package domineering

import (
	"strings"

	"github.com/herohde/mcgs/pkg/cgt"
	"github.com/herohde/mcgs/pkg/cgt/grid"
)

// Game is a Domineering position.
type Game struct {
	cgt.Base
	board      []cgt.Color
	rows, cols int
	gh         grid.Hash
}

// New parses a board string with rows separated by '|', each cell '.'
// (Empty), '#' (permanently blocked) or 'X'/'O' (a prior placement).
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
			panic("domineering: ragged board")
		}
		for _, r := range row {
			switch r {
			case '.':
				board = append(board, cgt.Empty)
			case '#':
				board = append(board, cgt.Border)
			case 'X':
				board = append(board, cgt.Black)
			case 'O':
				board = append(board, cgt.White)
			default:
				panic("domineering: invalid board character " + string(r))
			}
		}
	}
	return NewBoard(board, rows, cols)
}

// NewBoard takes ownership of board (row-major, rows*cols cells).
func NewBoard(board []cgt.Color, rows, cols int) *Game {
	g := &Game{board: board, rows: rows, cols: cols}
	cgt.RegisterType(g, grid.SymmetryMaskRect)
	g.gh.Reset(rows, cols, grid.SymmetryMaskRect)
	return g
}

func (g *Game) Board() []cgt.Color { return g.board }
func (g *Game) Shape() (rows, cols int) { return g.rows, g.cols }

// Play places a domino of toPlay's orientation (vertical for Black,
// horizontal for White) covering the two adjacent empty cells of m.
func (g *Game) Play(m cgt.Move, toPlay cgt.Color) {
	p1, p2 := cgt.UnpackMove2(m)
	if g.board[p1] != cgt.Empty || g.board[p2] != cgt.Empty {
		panic("domineering: play on non-empty cell")
	}

	g.PushPlay(m, toPlay)

	r1, c1 := grid.RowCol(p1, g.cols)
	r2, c2 := grid.RowCol(p2, g.cols)
	g.gh.Toggle(r1, c1, cgt.Empty)
	g.gh.Toggle(r2, c2, cgt.Empty)
	g.gh.Toggle(r1, c1, toPlay)
	g.gh.Toggle(r2, c2, toPlay)

	g.board[p1] = toPlay
	g.board[p2] = toPlay
	g.Hash().SetValue(g.gh.Value())
	g.MarkHashUpdated()
}

func (g *Game) UndoMove() {
	mc, toPlay := g.PopPlay()
	p1, p2 := cgt.UnpackMove2(mc)

	r1, c1 := grid.RowCol(p1, g.cols)
	r2, c2 := grid.RowCol(p2, g.cols)
	g.gh.Toggle(r1, c1, toPlay)
	g.gh.Toggle(r2, c2, toPlay)
	g.gh.Toggle(r1, c1, cgt.Empty)
	g.gh.Toggle(r2, c2, cgt.Empty)

	g.board[p1] = cgt.Empty
	g.board[p2] = cgt.Empty
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

// Inverse swaps colors and transposes the board: under negation Black's
// vertical dominoes must become White's horizontal ones, which a color swap
// alone does not achieve.
func (g *Game) Inverse() cgt.Game {
	inv := make([]cgt.Color, len(g.board))
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
		r, c := grid.RowCol(i, g.cols)
		inv[grid.Index(c, r, g.rows)] = sw
	}
	return NewBoard(inv, g.cols, g.rows)
}

// CreateMoveGenerator yields every pair of adjacent empty cells oriented for
// toPlay: vertical (same col, rows differing by 1) for Black, horizontal
// (same row, cols differing by 1) for White.
func (g *Game) CreateMoveGenerator(toPlay cgt.Color) cgt.MoveGenerator {
	dir := grid.Point{Row: 1, Col: 0}
	if toPlay == cgt.White {
		dir = grid.Point{Row: 0, Col: 1}
	}
	gen := &moveGenerator{game: g, dir: dir, p1: -1}
	gen.advance()
	return gen
}

type moveGenerator struct {
	game    *Game
	dir     grid.Point
	p1      int
	current cgt.Move
	has     bool
}

func (gen *moveGenerator) advance() {
	g := gen.game
	n := len(g.board)
	gen.p1++

	for gen.p1 < n {
		if g.board[gen.p1] == cgt.Empty {
			r, c := grid.RowCol(gen.p1, g.cols)
			np := (grid.Point{Row: r, Col: c}).Add(gen.dir)
			if np.InBounds(g.rows, g.cols) {
				p2 := grid.Index(np.Row, np.Col, g.cols)
				if g.board[p2] == cgt.Empty {
					gen.current = cgt.CreateMove2(gen.p1, p2)
					gen.has = true
					return
				}
			}
		}
		gen.p1++
	}
	gen.has = false
}

func (gen *moveGenerator) HasMove() bool { return gen.has }
func (gen *moveGenerator) Advance() { gen.advance() }
func (gen *moveGenerator) CurrentMove() cgt.Move { return gen.current }

// Split decomposes the board into independent sub-games whenever the
// remaining empty cells form more than one 4-connected component: each
// component becomes its own cropped board, with every non-component cell
// inside its bounding box frozen to Border (it can never be played on again).
func (g *Game) Split() cgt.SplitResult {
	components := connectedEmptyComponents(g.board, g.rows, g.cols)
	if len(components) < 2 {
		return cgt.NoSplit()
	}

	pieces := make([]cgt.Game, len(components))
	for i, comp := range components {
		pieces[i] = cropComponent(comp, g.cols)
	}
	return cgt.Replace(pieces...)
}

func connectedEmptyComponents(board []cgt.Color, rows, cols int) [][]int {
	seen := make([]bool, len(board))
	var components [][]int

	for start := 0; start < len(board); start++ {
		if board[start] != cgt.Empty || seen[start] {
			continue
		}

		var comp []int
		stack := []int{start}
		seen[start] = true
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, p)

			r, c := grid.RowCol(p, cols)
			for _, d := range grid.Neighbours4 {
				np := (grid.Point{Row: r, Col: c}).Add(d)
				if !np.InBounds(rows, cols) {
					continue
				}
				q := grid.Index(np.Row, np.Col, cols)
				if board[q] == cgt.Empty && !seen[q] {
					seen[q] = true
					stack = append(stack, q)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}

func cropComponent(comp []int, cols int) *Game {
	minR, minC, maxR, maxC := 1<<30, 1<<30, -1, -1
	for _, p := range comp {
		r, c := grid.RowCol(p, cols)
		if r < minR {
			minR = r
		}
		if c < minC {
			minC = c
		}
		if r > maxR {
			maxR = r
		}
		if c > maxC {
			maxC = c
		}
	}

	subRows, subCols := maxR-minR+1, maxC-minC+1
	sub := make([]cgt.Color, subRows*subCols)
	for i := range sub {
		sub[i] = cgt.Border
	}
	for _, p := range comp {
		r, c := grid.RowCol(p, cols)
		sub[grid.Index(r-minR, c-minC, subCols)] = cgt.Empty
	}
	return NewBoard(sub, subRows, subCols)
}

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
	p1, p2 := cgt.UnpackMove2(m)
	r1, c1 := grid.RowCol(p1, g.cols)
	r2, c2 := grid.RowCol(p2, g.cols)
	return pointString(r1, c1) + "-" + pointString(r2, c2)
}

func pointString(r, c int) string {
	return string(rune('a'+c)) + string(rune('1'+r))
}
