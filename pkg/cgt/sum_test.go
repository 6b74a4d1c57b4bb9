package cgt_test

import (
	"testing"

	"github.com/herohde/mcgs/pkg/cgt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterGame is a minimal cgt.Game test double: a single pile of n tokens,
// where playing removes exactly one token (a Nim-like single heap). It never
// splits.
type counterGame struct {
	cgt.Base
	n int
}

func newCounter(n int) *counterGame {
	return &counterGame{n: n}
}

func (g *counterGame) Play(m cgt.Move, toPlay cgt.Color) {
	if g.n <= 0 {
		panic("counterGame: play on empty pile")
	}
	g.PushPlay(m, toPlay)
	g.Hash().Toggle(0, g.n)
	g.n--
	g.Hash().Toggle(0, g.n)
	g.MarkHashUpdated()
}

func (g *counterGame) UndoMove() {
	_, _ = g.PopPlay()
	g.Hash().Toggle(0, g.n)
	g.n++
	g.Hash().Toggle(0, g.n)
	g.MarkHashUpdated()
}

func (g *counterGame) InitHash(h *cgt.LocalHash) {
	h.Toggle(0, g.n)
	h.ToggleType(cgt.TypeOf(g).ID)
}

func (g *counterGame) GetLocalHash() uint64 { return g.ComputeLocalHash(g) }
func (g *counterGame) Inverse() cgt.Game { return newCounter(g.n) }
func (g *counterGame) Print() string { return "" }
func (g *counterGame) PrintMove(m cgt.Move) string { return "" }
func (g *counterGame) CreateMoveGenerator(toPlay cgt.Color) cgt.MoveGenerator {
	return &counterGen{has: g.n > 0}
}

type counterGen struct{ has bool }

func (g *counterGen) HasMove() bool { return g.has }
func (g *counterGen) Advance() { g.has = false }
func (g *counterGen) CurrentMove() cgt.Move { return cgt.CreateMove1(0) }

func TestSumAddPopRoundTrip(t *testing.T) {
	s := cgt.NewSum(cgt.Black)
	before := s.GlobalHash()

	s.Add(newCounter(3))
	assert.Equal(t, 1, s.NumTotalGames())
	assert.NotEqual(t, before, s.GlobalHash())

	s.Pop()
	assert.Equal(t, 0, s.NumTotalGames())
	assert.Equal(t, before, s.GlobalHash())
}

func TestSumPlayUndoRestoresHashAndToPlay(t *testing.T) {
	s := cgt.NewSum(cgt.Black)
	s.Add(newCounter(2))
	s.Add(newCounter(3))

	beforeHash, beforePlay := s.GlobalHash(), s.ToPlay()

	s.Play(0, cgt.CreateMove1(0))
	assert.NotEqual(t, beforeHash, s.GlobalHash())
	assert.Equal(t, beforePlay.Opponent(), s.ToPlay())

	s.Undo()
	assert.Equal(t, beforeHash, s.GlobalHash())
	assert.Equal(t, beforePlay, s.ToPlay())
}

func TestSumGlobalHashPermutationInvariant(t *testing.T) {
	build := func(order []int) *cgt.Sum {
		s := cgt.NewSum(cgt.White)
		piles := []int{2, 5, 9}
		for _, i := range order {
			s.Add(newCounter(piles[i]))
		}
		return s
	}

	a := build([]int{0, 1, 2})
	b := build([]int{2, 0, 1})

	assert.Equal(t, a.GlobalHash(), b.GlobalHash())
}

func TestSumPermuteDoesNotChangeGlobalHash(t *testing.T) {
	s := cgt.NewSum(cgt.Black)
	s.Add(newCounter(1))
	s.Add(newCounter(2))
	s.Add(newCounter(3))

	before := s.GlobalHash()
	s.Permute([]int{2, 0, 1})
	assert.Equal(t, before, s.GlobalHash())

	require.Equal(t, 3, s.NumTotalGames())
}

func TestOrderGamesRejectsSelfComparison(t *testing.T) {
	g := newCounter(1)
	assert.Panics(t, func() { cgt.OrderGames(g, g) })
}
