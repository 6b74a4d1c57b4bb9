package search

import (
	"context"
	"fmt"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/herohde/mcgs/pkg/cgt"
	"github.com/seekerror/logw"
)

// Outcome is a solved result for one (global hash, to_play) position.
type Outcome uint8

const (
	// Unresolved means no entry is present for the key.
	Unresolved Outcome = iota
	// InProgress marks a position currently being explored higher up the
	// same search path. Read as a loss for the side to move (Win below never
	// blocks on it, keeping the recursion strictly depth-bounded even if a
	// hash collision or an unexpected repeated position is encountered).
	InProgress
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case InProgress:
		return "in-progress"
	default:
		return "unresolved"
	}
}

// TranspositionTable caches solved outcomes keyed by (global hash, to_play),
// so identical sum-game positions reached by different move orders are
// solved once. Must be safe for concurrent use.
type TranspositionTable interface {
	// Read returns the outcome for (hash, toPlay), if present.
	Read(hash uint64, toPlay cgt.Color) (Outcome, bool)
	// Write stores outcome for (hash, toPlay), subject to the table's
	// replacement policy. Returns whether the entry was written.
	Write(hash uint64, toPlay cgt.Color, outcome Outcome) bool

	// Size returns the size of the table in bytes.
	Size() uint64
	// Used returns the utilization as a fraction [0;1].
	Used() float64
}

// node is one transposition table entry. 16 bytes.
type node struct {
	hash    uint64
	toPlay  cgt.Color
	outcome Outcome
}

// table is a lock-free transposition table using atomic-CAS pointer swaps,
// one node pointer per slot.
type table struct {
	entries []*node
	mask    uint64
	used    uint64
}

// NewTranspositionTable allocates a table sized to the nearest lower power of
// two number of entries fitting in size bytes.
func NewTranspositionTable(ctx context.Context, size uint64) TranspositionTable {
	n := uint64(1 << (63 - 5 - bits.LeadingZeros64(size)))

	logw.Infof(ctx, "Allocating %vMB transposition table with %v entries", size>>20, n)

	return &table{
		entries: make([]*node, n),
		mask:    n - 1,
	}
}

func (t *table) Size() uint64 {
	return uint64(len(t.entries)) << 5
}

func (t *table) Used() float64 {
	return float64(atomic.LoadUint64(&t.used)) / float64(len(t.entries))
}

func (t *table) Read(hash uint64, toPlay cgt.Color) (Outcome, bool) {
	key := hash & t.mask
	addr := (*unsafe.Pointer)(unsafe.Pointer(&t.entries[key]))

	ptr := (*node)(atomic.LoadPointer(addr))
	if ptr != nil && ptr.hash == hash && ptr.toPlay == toPlay {
		return ptr.outcome, true
	}
	return Unresolved, false
}

func (t *table) Write(hash uint64, toPlay cgt.Color, outcome Outcome) bool {
	key := hash & t.mask
	addr := (*unsafe.Pointer)(unsafe.Pointer(&t.entries[key]))

	fresh := &node{hash: hash, toPlay: toPlay, outcome: outcome}

	ptr := (*node)(atomic.LoadPointer(addr))
	for {
		// Never let a resolved Win/Loss already in the slot for this exact
		// key be clobbered by a stale InProgress marker racing behind it.
		if ptr != nil && ptr.hash == hash && ptr.toPlay == toPlay && ptr.outcome != InProgress && outcome == InProgress {
			return false
		}
		if atomic.CompareAndSwapPointer(addr, unsafe.Pointer(ptr), unsafe.Pointer(fresh)) {
			if ptr == nil {
				atomic.AddUint64(&t.used, 1)
			}
			return true
		}
		ptr = (*node)(atomic.LoadPointer(addr))
	}
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%v @ %v%%]", t.Size(), int(100*t.Used()))
}

// NoTranspositionTable is a Nop implementation, for searches run without a
// cache.
type NoTranspositionTable struct{}

func (NoTranspositionTable) Read(hash uint64, toPlay cgt.Color) (Outcome, bool) { return Unresolved, false }
func (NoTranspositionTable) Write(hash uint64, toPlay cgt.Color, outcome Outcome) bool {
	return false
}
func (NoTranspositionTable) Size() uint64 { return 0 }
func (NoTranspositionTable) Used() float64 { return 0 }
