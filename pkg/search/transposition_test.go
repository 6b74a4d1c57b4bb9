package search_test

import (
	"context"
	"testing"

	"github.com/herohde/mcgs/pkg/cgt"
	"github.com/herohde/mcgs/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTableReadWriteRoundTrip(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background(), 1<<16)

	_, ok := tt.Read(42, cgt.Black)
	assert.False(t, ok)

	assert.True(t, tt.Write(42, cgt.Black, search.Win))
	outcome, ok := tt.Read(42, cgt.Black)
	assert.True(t, ok)
	assert.Equal(t, search.Win, outcome)
}

func TestTranspositionTableDistinguishesToPlay(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background(), 1<<16)

	tt.Write(7, cgt.Black, search.Win)

	black, ok := tt.Read(7, cgt.Black)
	assert.True(t, ok)
	assert.Equal(t, search.Win, black)

	// Same hash, other side to move: the stored entry must not be returned.
	_, ok = tt.Read(7, cgt.White)
	assert.False(t, ok)
}

func TestTranspositionTableInProgressNeverClobbersResolved(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background(), 1<<16)

	tt.Write(9, cgt.Black, search.Win)
	wrote := tt.Write(9, cgt.Black, search.InProgress)
	assert.False(t, wrote)

	outcome, ok := tt.Read(9, cgt.Black)
	assert.True(t, ok)
	assert.Equal(t, search.Win, outcome)
}

func TestNoTranspositionTableNeverCaches(t *testing.T) {
	var tt search.NoTranspositionTable

	assert.False(t, tt.Write(1, cgt.Black, search.Win))
	_, ok := tt.Read(1, cgt.Black)
	assert.False(t, ok)
	assert.Equal(t, uint64(0), tt.Size())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "win", search.Win.String())
	assert.Equal(t, "loss", search.Loss.String())
	assert.Equal(t, "in-progress", search.InProgress.String())
	assert.Equal(t, "unresolved", search.Unresolved.String())
}
