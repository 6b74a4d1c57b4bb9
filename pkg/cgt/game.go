package cgt

import "fmt"

// Relation is a stable three-way comparison result. Unknown is allowed from
// Game.Order and is treated as Equal by a stable sort.
type Relation int8

const (
	RelUnknown Relation = iota
	RelLess
	RelEqual
	RelGreater
)

// MoveGenerator is a forward-only, lazy cursor over one player's legal moves
// in a single sub-game. It is positioned at the first move (if any) when
// created. Usage:
//
//	for gen := g.CreateMoveGenerator(toPlay); gen.HasMove(); gen.Advance() {
//	    m := gen.CurrentMove()
//	    ...
//	}
type MoveGenerator interface {
	// HasMove returns true iff the cursor is positioned at a valid move.
	HasMove() bool
	// Advance moves the cursor to the next move, if any.
	Advance()
	// CurrentMove returns the move at the cursor. Only valid while HasMove().
	CurrentMove() Move
}

// SplitResult is the outcome of Game.Split: absent means keep the game
// unchanged; present with an
// empty Pieces means the game dissolved; present with pieces means the game
// is replaced by those newly owned games.
type SplitResult struct {
	Present bool
	Pieces  []Game
}

// NoSplit means "no split happened; keep the game".
func NoSplit() SplitResult {
	return SplitResult{}
}

// Dissolve means the game has dissolved into nothing.
func Dissolve() SplitResult {
	return SplitResult{Present: true}
}

// Replace means the game is replaced by the given newly owned pieces.
func Replace(pieces ...Game) SplitResult {
	return SplitResult{Present: true, Pieces: pieces}
}

// Game is the polymorphic sub-game contract. A concrete game embeds *Base*
// for its move/undo-code stack and hash state machine bookkeeping, and
// implements the methods below. Split, Normalize/UndoNormalize and Order have
// trivial defaults promoted from Base; override them by shadowing the
// promoted method on the concrete type.
type Game interface {
	// Play pushes m (colored by toPlay) and mutates game-specific state.
	// Precondition: m is legal for toPlay.
	Play(m Move, toPlay Color)
	// UndoMove reverses the most recent Play. Precondition: the top of the
	// undo-code stack is a play entry.
	UndoMove()
	// CreateMoveGenerator returns a fresh cursor over toPlay's legal moves.
	CreateMoveGenerator(toPlay Color) MoveGenerator
	// Inverse returns a newly owned game representing the negation.
	Inverse() Game
	// Split rewrites the game into zero or more pieces, or reports no split.
	Split() SplitResult
	// Normalize rewrites the game into a canonical form, pushing a
	// "normalize" undo entry.
	Normalize()
	// UndoNormalize exactly reverses the most recent Normalize.
	UndoNormalize()
	// Order gives a stable three-way comparison against another game of the
	// same concrete type (OrderGames orders across types by type id first).
	Order(other Game) Relation
	// InitHash populates h from scratch (called when the local hash is
	// invalid).
	InitHash(h *LocalHash)
	// GetLocalHash returns the symmetry-canonical local hash, recomputing via
	// InitHash iff the hash state is not up-to-date.
	GetLocalHash() uint64
	// Print renders the game board as text (X/O/./# cells, | row separators).
	Print() string
	// PrintMove renders a short human string for m.
	PrintMove(m Move) string
}

// Base implements the shared move-stack / undo-code-stack / hash-state-machine
// bookkeeping every concrete Game needs, plus trivial defaults for the
// optional contract methods (Split, Normalize, UndoNormalize, Order). Concrete
// games embed Base and call its helpers from their own Play/UndoMove/InitHash.
type Base struct {
	moveStack []Move
	undoStack []undoCode
	hashState HashState
	hash      LocalHash
}

type undoCode uint8

const (
	undoPlay undoCode = iota
	undoNormalize
)

// beginMutation downgrades the hash state before a mutation: an up-to-date
// hash tentatively becomes needs-update (recoverable by a subsequent
// incremental Toggle + markHashUpdated); any other state collapses to
// invalid, since a second unrecovered dirty mutation can no longer be trusted
// incrementally.
func (b *Base) beginMutation() {
	if b.hashState == HashUpToDate {
		b.hashState = HashNeedsUpdate
	} else {
		b.hashState = HashInvalid
	}
}

// markHashUpdated restores up-to-date after the caller has applied an
// incremental hash delta matching the mutation. A no-op if the state had
// already collapsed to invalid.
func (b *Base) markHashUpdated() {
	if b.hashState == HashNeedsUpdate {
		b.hashState = HashUpToDate
	}
}

// InvalidateHash forces a full recompute on the next GetLocalHash.
func (b *Base) InvalidateHash() {
	b.hashState = HashInvalid
	b.hash.Reset()
}

// Hash returns the embedded LocalHash for direct incremental toggling by the
// concrete game's Play/UndoMove/InitHash implementations.
func (b *Base) Hash() *LocalHash {
	return &b.hash
}

// BeginMutation and MarkHashUpdated are exported wrappers so concrete games
// in other packages can drive the hash state machine around their own
// mutations (e.g. grid games toggling through a grid.Hash instead of Base's
// embedded LocalHash).
func (b *Base) BeginMutation() { b.beginMutation() }
func (b *Base) MarkHashUpdated() { b.markHashUpdated() }

// PushPlay appends a colored move and a play undo-entry, and runs the hash
// state-machine downgrade. Call before mutating board state.
func (b *Base) PushPlay(m Move, toPlay Color) {
	b.beginMutation()
	b.moveStack = append(b.moveStack, SetColor(m, toPlay))
	b.undoStack = append(b.undoStack, undoPlay)
}

// PopPlay pops the top play entry and returns its (uncolored move, color).
// Panics if the top of the undo-code stack is not a play entry.
func (b *Base) PopPlay() (Move, Color) {
	if len(b.undoStack) == 0 || b.undoStack[len(b.undoStack)-1] != undoPlay {
		panic("cgt: undo_move called but top of undo-code stack is not a play")
	}
	b.undoStack = b.undoStack[:len(b.undoStack)-1]

	mc := b.moveStack[len(b.moveStack)-1]
	b.moveStack = b.moveStack[:len(b.moveStack)-1]

	b.beginMutation()
	return RemoveColor(mc), GetColor(mc)
}

// PushNormalize pushes a normalize undo-entry and runs the hash downgrade.
func (b *Base) PushNormalize() {
	b.beginMutation()
	b.undoStack = append(b.undoStack, undoNormalize)
}

// PopNormalize pops the top normalize entry. Panics if it is not present.
func (b *Base) PopNormalize() {
	if len(b.undoStack) == 0 || b.undoStack[len(b.undoStack)-1] != undoNormalize {
		panic("cgt: undo_normalize called but top of undo-code stack is not a normalize")
	}
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.beginMutation()
}

// MoveStackLen returns the number of moves played (not yet undone).
func (b *Base) MoveStackLen() int {
	return len(b.moveStack)
}

// LastMove returns the most recently played (uncolored move, color), if any.
func (b *Base) LastMove() (Move, Color, bool) {
	if len(b.moveStack) == 0 {
		return 0, Black, false
	}
	mc := b.moveStack[len(b.moveStack)-1]
	return RemoveColor(mc), GetColor(mc), true
}

// ComputeLocalHash implements the GetLocalHash state machine: on anything but
// up-to-date, reset, call self.InitHash, and transition to up-to-date. self
// must be the concrete game embedding this Base (Go has no virtual dispatch,
// so it is passed explicitly).
func (b *Base) ComputeLocalHash(self Game) uint64 {
	if b.hashState != HashUpToDate {
		b.hash.Reset()
		self.InitHash(&b.hash)
		b.hashState = HashUpToDate
	}
	return b.hash.Value()
}

// Split defaults to "no split happened".
func (b *Base) Split() SplitResult {
	return NoSplit()
}

// Normalize defaults to a trivial no-op rewrite: push the undo entry and
// immediately recover up-to-date (nothing actually changed).
func (b *Base) Normalize() {
	b.PushNormalize()
	b.markHashUpdated()
}

// UndoNormalize defaults to the matching trivial no-op reversal.
func (b *Base) UndoNormalize() {
	b.PopNormalize()
	b.markHashUpdated()
}

// Order defaults to "unknown", which a stable sort treats as equal.
func (b *Base) Order(other Game) Relation {
	return RelUnknown
}

func (rel Relation) String() string {
	switch rel {
	case RelLess:
		return "<"
	case RelEqual:
		return "="
	case RelGreater:
		return ">"
	default:
		return "?"
	}
}

// OrderGames gives a stable total order between two games for sorting within
// a Sum: first by type id, then by the concrete game's Order implementation.
// Unknown game-level order is treated as equal (stable sort preserves the
// existing relative position).
func OrderGames(a, b Game) Relation {
	if a == b {
		panic(fmt.Sprintf("cgt: ordering a game against itself: %v", a))
	}

	ta, tb := TypeOf(a), TypeOf(b)
	if ta.ID != tb.ID {
		if ta.ID < tb.ID {
			return RelLess
		}
		return RelGreater
	}

	rel := a.Order(b)
	switch rel {
	case RelLess, RelEqual, RelGreater:
		return rel
	default:
		return RelEqual
	}
}
