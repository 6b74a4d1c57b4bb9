package store_test

import (
	"context"
	"testing"

	"github.com/herohde/mcgs/pkg/search"
	"github.com/herohde/mcgs/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreGetMissing(t *testing.T) {
	s := store.NewMemStore()
	_, ok, err := s.Get(context.Background(), store.Key{TypeID: 1, Hash: 2, ToPlay: 0})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStorePutGetRoundTrip(t *testing.T) {
	s := store.NewMemStore()
	key := store.Key{TypeID: 1, Hash: 42, ToPlay: 1}

	require.NoError(t, s.Put(context.Background(), key, search.Win))

	outcome, ok, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, search.Win, outcome)
}

func TestMemStorePutOverwrites(t *testing.T) {
	s := store.NewMemStore()
	key := store.Key{TypeID: 2, Hash: 7, ToPlay: 0}

	require.NoError(t, s.Put(context.Background(), key, search.Win))
	require.NoError(t, s.Put(context.Background(), key, search.Loss))

	outcome, ok, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, search.Loss, outcome)
}

func TestMemStoreLen(t *testing.T) {
	s := store.NewMemStore()
	n, err := s.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	s.Put(context.Background(), store.Key{TypeID: 1, Hash: 1}, search.Win)
	s.Put(context.Background(), store.Key{TypeID: 1, Hash: 2}, search.Loss)

	n, err = s.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMemStoreDistinguishesKeysByAllFields(t *testing.T) {
	s := store.NewMemStore()
	a := store.Key{TypeID: 1, Hash: 5, ToPlay: 0}
	b := store.Key{TypeID: 1, Hash: 5, ToPlay: 1}

	s.Put(context.Background(), a, search.Win)
	s.Put(context.Background(), b, search.Loss)

	gotA, _, _ := s.Get(context.Background(), a)
	gotB, _, _ := s.Get(context.Background(), b)
	assert.Equal(t, search.Win, gotA)
	assert.Equal(t, search.Loss, gotB)
}
