package cgt

import (
	"math/rand"
	"reflect"
	"sync"
)

// HashState is the tri-value state machine that lets a Game skip recomputing
// its local hash from scratch after every mutation: up-to-date hashes can be
// updated incrementally; a mutation that cannot be updated incrementally must
// downgrade straight to invalid rather than collapsing the distinction into a
// boolean.
type HashState uint8

const (
	HashInvalid HashState = iota
	HashNeedsUpdate
	HashUpToDate
)

// randKey identifies one axis of the process-global random table: the
// concrete type of the toggled value plus the value itself.
type randKey struct {
	typ reflect.Type
	val any
}

var (
	randMu     sync.Mutex
	randTables = map[randKey][]uint64{}
	randSrc    = rand.New(rand.NewSource(1))
)

// randWord returns a fresh pseudorandom 64-bit word that is never zero.
func randWord() uint64 {
	for {
		if v := randSrc.Uint64(); v != 0 {
			return v
		}
	}
}

// randValue returns the (position, value) random word, growing both axes on
// demand (doubling-based growth for the position axis). Never returns zero.
func randValue(position int, value any) uint64 {
	key := randKey{typ: reflect.TypeOf(value), val: value}

	randMu.Lock()
	defer randMu.Unlock()

	table := randTables[key]
	idx := position + 1 // position may be -1 (reserved for ToggleType)
	if idx >= len(table) {
		n := len(table)
		if n == 0 {
			n = 4
		}
		for n <= idx {
			n *= 2
		}
		grown := make([]uint64, n)
		copy(grown, table)
		for i := len(table); i < n; i++ {
			grown[i] = randWord()
		}
		table = grown
		randTables[key] = table
	}
	return table[idx]
}

// LocalHash is a Zobrist-style accumulator for one sub-game: reset, toggle
// (position, value), direct set, and read. Two identical sequences of toggles
// always yield the same value, regardless of path.
type LocalHash struct {
	value uint64
}

// Reset returns the hash to the neutral element (zero).
func (h *LocalHash) Reset() {
	h.value = 0
}

// Value returns the current accumulator.
func (h *LocalHash) Value() uint64 {
	return h.value
}

// SetValue directly overrides the accumulator. Used by grid.Hash, which
// composes several LocalHash values and needs to restore one verbatim.
func (h *LocalHash) SetValue(v uint64) {
	h.value = v
}

// Toggle XORs the accumulator with rand(position, value).
func (h *LocalHash) Toggle(position int, value any) {
	h.value ^= randValue(position, value)
}

// ToggleType mixes the game's type id into the accumulator once, so that
// two games of different concrete types never collide on local hash alone.
// Uses a reserved position distinct from any board position.
func (h *LocalHash) ToggleType(typeID int) {
	h.value ^= randValue(-1, typeID)
}
