// Package search implements the alternating-player search driver over a
// cgt.Sum: an exact win/loss solver with optional transposition caching and
// cooperative deadline cancellation.
package search

import (
	"context"
	"errors"

	"github.com/herohde/mcgs/pkg/cgt"
	"github.com/herohde/mcgs/pkg/search/searchctl"
)

// ErrAborted is returned when the deadline or context expired before the sum
// was resolved. The sum is guaranteed fully unwound (every Play matched by
// an Undo) regardless.
var ErrAborted = errors.New("search: aborted before a result was reached")

// Solve reports whether the player to move in sum has a winning strategy,
// using an unbounded deadline and no transposition table.
func Solve(ctx context.Context, sum *cgt.Sum) (bool, error) {
	return SolveWithOptions(ctx, sum, nil, nil)
}

// SolveWithOptions is Solve with an explicit deadline and transposition
// table. A nil deadline never expires on its own (still cancellable via
// ctx); a nil table disables caching.
func SolveWithOptions(ctx context.Context, sum *cgt.Sum, deadline *searchctl.Deadline, tt TranspositionTable) (bool, error) {
	if deadline == nil {
		deadline = searchctl.NewDeadline()
	}
	if tt == nil {
		tt = NoTranspositionTable{}
	}
	return win(ctx, sum, deadline, tt)
}

// win implements the negamax-style recursion: the player to move in sum wins
// iff some legal move leads to a position where the opponent does not win.
// No legal move anywhere in the sum is a loss for the player to move.
func win(ctx context.Context, sum *cgt.Sum, deadline *searchctl.Deadline, tt TranspositionTable) (bool, error) {
	if deadline.Expired(ctx) {
		return false, ErrAborted
	}

	hash, toPlay := sum.GlobalHash(), sum.ToPlay()
	if outcome, ok := tt.Read(hash, toPlay); ok {
		if outcome == InProgress {
			return false, nil
		}
		return outcome == Win, nil
	}
	tt.Write(hash, toPlay, InProgress)

	for i := 0; i < sum.NumTotalGames(); i++ {
		gen := sum.GameAt(i).CreateMoveGenerator(toPlay)
		for gen.HasMove() {
			if deadline.Expired(ctx) {
				return false, ErrAborted
			}

			m := gen.CurrentMove()
			sum.Play(i, m)
			oppWins, err := win(ctx, sum, deadline, tt)
			sum.Undo()

			if err != nil {
				return false, err
			}
			if !oppWins {
				tt.Write(hash, toPlay, Win)
				return true, nil
			}

			gen.Advance()
		}
	}

	tt.Write(hash, toPlay, Loss)
	return false, nil
}
