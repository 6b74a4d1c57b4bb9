// Package searchctl provides cooperative cancellation for the search driver:
// a deadline armed once at the start of a solve, checked between
// move-generator advances rather than inside a sub-game's own incremental
// board mutations.
package searchctl

import (
	"context"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"go.uber.org/atomic"
)

// Deadline is a one-shot, thread-safe halt flag for a single search. It may
// be tripped by an armed timer, by an external caller (e.g. a reaper
// subprocess asking the search to stop), or by the parent context.
type Deadline struct {
	halt atomic.Bool
}

// NewDeadline returns an unarmed, unhalted Deadline.
func NewDeadline() *Deadline {
	return &Deadline{}
}

// Halt trips the deadline immediately.
func (d *Deadline) Halt() {
	d.halt.Store(true)
}

// Halted reports whether Halt has been called.
func (d *Deadline) Halted() bool {
	return d.halt.Load()
}

// ArmTimer schedules an automatic Halt after budget elapses, if present. An
// absent budget means no timer -- the search runs until externally halted or
// the context is done.
func (d *Deadline) ArmTimer(ctx context.Context, budget lang.Optional[time.Duration]) {
	b, ok := budget.V()
	if !ok || b <= 0 {
		return
	}
	logw.Debugf(ctx, "Arming search deadline: %v", b)
	time.AfterFunc(b, d.Halt)
}

// Expired reports whether the search must stop now: the deadline has
// tripped, or the context has been cancelled. The search driver calls this
// between move-generator advances, never mid-mutation, so a sub-game is
// always left in a consistent, fully-unwound state on an early return.
func (d *Deadline) Expired(ctx context.Context) bool {
	if d.Halted() {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
