package cgt

import "fmt"

// slot pairs an owned sub-game with a stable identity assigned once when the
// game is added to the Sum. The identity -- not the game's position in the
// slice -- salts its contribution to the global hash, so removing a game from
// the middle of the list (as a split does) never disturbs any other game's
// contribution.
type slot struct {
	game Game
	id   int
}

func indexKey(id int) uint64 {
	return randValue(id, "indexKey")
}

func colorKey(c Color) uint64 {
	return randValue(int(c), "colorKey")
}

type stepKind uint8

const (
	stepPlay stepKind = iota
	stepSplit
)

// step is one entry of the sum-level undo history: either an ordinary play in
// one sub-game, or a split that replaced one sub-game with zero or more
// pieces.
type step struct {
	kind stepKind

	// stepPlay
	index int
	move  Move

	// stepSplit
	original   Game
	originalID int
	pieceIDs   []int
}

// Sum is the owned, ordered list of active sub-games plus the cross-sub-game
// move history and the global hash. The global hash is
// colorKey(toPlay) XOR ⊕ᵢ (Gᵢ.LocalHash() XOR indexKey(slot id of Gᵢ)),
// which is invariant under any reordering of the slice because each term is
// salted by the game's stable slot id rather than its transient position.
type Sum struct {
	games    []slot
	nextSlot int
	toPlay   Color
	global   uint64
	history  []step
}

// NewSum creates an empty sum-game with the given player to move.
func NewSum(toPlay Color) *Sum {
	return &Sum{toPlay: toPlay, global: colorKey(toPlay)}
}

// NumTotalGames returns the number of currently active sub-games.
func (s *Sum) NumTotalGames() int {
	return len(s.games)
}

// ToPlay returns the player to move.
func (s *Sum) ToPlay() Color {
	return s.toPlay
}

// GlobalHash returns the current global hash.
func (s *Sum) GlobalHash() uint64 {
	return s.global
}

// Games returns the active sub-games in their current order. Callers must
// not retain or mutate the returned slice across a Play/Undo/Add/Pop/Permute.
func (s *Sum) Games() []Game {
	ret := make([]Game, len(s.games))
	for i, sl := range s.games {
		ret[i] = sl.game
	}
	return ret
}

// GameAt returns the sub-game currently at logical index i.
func (s *Sum) GameAt(i int) Game {
	return s.games[i].game
}

// Add takes ownership of g, appending it to the sum.
func (s *Sum) Add(g Game) {
	id := s.nextSlot
	s.nextSlot++

	s.global ^= g.GetLocalHash() ^ indexKey(id)
	s.games = append(s.games, slot{game: g, id: id})
}

// Pop removes and returns ownership of the last-added sub-game. Must be
// called in LIFO order relative to Add for Undo to remain sound.
func (s *Sum) Pop() Game {
	n := len(s.games)
	if n == 0 {
		panic("cgt: pop on empty sum")
	}
	sl := s.games[n-1]
	s.global ^= sl.game.GetLocalHash() ^ indexKey(sl.id)
	s.games = s.games[:n-1]
	return sl.game
}

// SetToPlay sets the player to move, updating the global hash accordingly.
func (s *Sum) SetToPlay(c Color) {
	s.global ^= colorKey(s.toPlay)
	s.toPlay = c
	s.global ^= colorKey(s.toPlay)
}

func (s *Sum) flipToPlay() {
	s.SetToPlay(s.toPlay.Opponent())
}

// Play plays move m in the sub-game at logical index i for the current
// to_play, then consults its Split. If split is absent, the play is recorded
// as an ordinary step. If present, the sub-game is removed (but preserved,
// undissolved, inside the undo record) and replaced by its pieces, appended
// to the end of the active list; the global hash is updated by removing the
// original's contribution and adding each piece's. Finally flips to_play.
func (s *Sum) Play(i int, m Move) {
	if i < 0 || i >= len(s.games) {
		panic(fmt.Sprintf("cgt: play: sub-game index %v out of range [0,%v)", i, len(s.games)))
	}

	sl := s.games[i]
	g := sl.game
	prevHash := g.GetLocalHash()
	g.Play(m, s.toPlay)

	if sr := g.Split(); sr.Present {
		s.global ^= prevHash ^ indexKey(sl.id)
		s.games = append(s.games[:i:i], s.games[i+1:]...)

		pieceIDs := make([]int, len(sr.Pieces))
		for j, p := range sr.Pieces {
			id := s.nextSlot
			s.nextSlot++
			s.global ^= p.GetLocalHash() ^ indexKey(id)
			s.games = append(s.games, slot{game: p, id: id})
			pieceIDs[j] = id
		}

		s.history = append(s.history, step{kind: stepSplit, index: i, original: g, originalID: sl.id, pieceIDs: pieceIDs})
	} else {
		s.global ^= prevHash ^ g.GetLocalHash()
		s.history = append(s.history, step{kind: stepPlay, index: i, move: m})
	}

	s.flipToPlay()
}

// Undo reverses the most recent Play, restoring num_total_games, the global
// hash, the move history and to_play to their pre-play values.
func (s *Sum) Undo() {
	n := len(s.history)
	if n == 0 {
		panic("cgt: undo on empty sum history")
	}
	st := s.history[n-1]
	s.history = s.history[:n-1]
	s.flipToPlay()

	switch st.kind {
	case stepPlay:
		g := s.games[st.index].game
		prevHash := g.GetLocalHash()
		g.UndoMove()
		s.global ^= prevHash ^ g.GetLocalHash()

	case stepSplit:
		k := len(st.pieceIDs)
		tail := s.games[len(s.games)-k:]
		for j := k - 1; j >= 0; j-- {
			sl := tail[j]
			s.global ^= sl.game.GetLocalHash() ^ indexKey(sl.id)
		}
		s.games = s.games[:len(s.games)-k]

		st.original.UndoMove()
		s.global ^= st.original.GetLocalHash() ^ indexKey(st.originalID)

		s.games = append(s.games, slot{})
		copy(s.games[st.index+1:], s.games[st.index:len(s.games)-1])
		s.games[st.index] = slot{game: st.original, id: st.originalID}

	default:
		panic(fmt.Sprintf("cgt: undo: unknown step kind %v", st.kind))
	}
}

// Permute reorders the active sub-games according to perm, a permutation of
// [0,n): perm[newPos] names the old position moving there. It does not
// affect the global hash, to_play, or undo history -- it exists to exercise
// permutation invariance of the global hash.
func (s *Sum) Permute(perm []int) {
	if len(perm) != len(s.games) {
		panic("cgt: permute: length mismatch")
	}
	seen := make([]bool, len(perm))
	next := make([]slot, len(perm))
	for newPos, oldPos := range perm {
		if oldPos < 0 || oldPos >= len(s.games) || seen[oldPos] {
			panic("cgt: permute: not a permutation")
		}
		seen[oldPos] = true
		next[newPos] = s.games[oldPos]
	}
	s.games = next
}

func (s *Sum) String() string {
	return fmt.Sprintf("sum[n=%v, toPlay=%v, hash=%#x]", len(s.games), s.toPlay, s.global)
}
