package cgt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasePushPopPlaySymmetric(t *testing.T) {
	var b Base

	b.PushPlay(CreateMove1(7), Black)
	assert.Equal(t, 1, b.MoveStackLen())

	m, c, ok := b.LastMove()
	assert.True(t, ok)
	assert.Equal(t, Black, c)
	assert.Equal(t, 7, UnpackMove1(m))

	gotM, gotC := b.PopPlay()
	assert.Equal(t, m, gotM)
	assert.Equal(t, Black, gotC)
	assert.Equal(t, 0, b.MoveStackLen())
}

func TestBasePopPlayPanicsOnEmptyStack(t *testing.T) {
	var b Base
	assert.Panics(t, func() { b.PopPlay() })
}

func TestBasePopPlayPanicsAfterNormalize(t *testing.T) {
	var b Base
	b.PushNormalize()
	assert.Panics(t, func() { b.PopPlay() })
}

func TestBaseHashStateMachine(t *testing.T) {
	var b Base
	assert.Equal(t, HashInvalid, b.hashState)

	b.beginMutation()
	assert.Equal(t, HashInvalid, b.hashState)
	b.markHashUpdated()
	assert.Equal(t, HashInvalid, b.hashState)

	b.hashState = HashUpToDate
	b.beginMutation()
	assert.Equal(t, HashNeedsUpdate, b.hashState)
	b.markHashUpdated()
	assert.Equal(t, HashUpToDate, b.hashState)
}

func TestBaseInvalidateHashForcesRecompute(t *testing.T) {
	var b Base
	b.hashState = HashUpToDate
	b.Hash().Toggle(0, Black)

	b.InvalidateHash()
	assert.Equal(t, HashInvalid, b.hashState)
	assert.Equal(t, uint64(0), b.Hash().Value())
}

func TestOrderDefaultsToUnknown(t *testing.T) {
	var b Base
	assert.Equal(t, RelUnknown, b.Order(&fakeGameA{}))
}
