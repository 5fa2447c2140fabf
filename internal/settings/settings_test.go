package settings

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/numberrush/internal/store"
)

func TestLoad_Defaults(t *testing.T) {
	r := New(store.NewMemoryKV())

	s, err := r.Load(context.Background(), 15)
	require.NoError(t, err)
	assert.Equal(t, Settings{Timer: 15}, s)

	s, err = r.Load(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimer, s.Timer)
}

func TestSetAndLoad(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	r := New(kv)

	name, err := r.SetName(ctx, "  Ada  ")
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)
	require.NoError(t, r.SetTimer(ctx, 20))

	s, err := r.Load(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, Settings{Name: "Ada", Timer: 20}, s)

	raw, err := kv.Get(ctx, KeyTimer)
	require.NoError(t, err)
	assert.Equal(t, "20", raw)
}

func TestSetName_EmptyClears(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	r := New(kv)

	_, err := r.SetName(ctx, "Ada")
	require.NoError(t, err)
	_, err = r.SetName(ctx, "   ")
	require.NoError(t, err)

	_, err = kv.Get(ctx, KeyName)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSetTimer_RejectsOtherValues(t *testing.T) {
	r := New(store.NewMemoryKV())
	for _, sec := range []int{0, 3, 11, 60, -5} {
		err := r.SetTimer(context.Background(), sec)
		assert.True(t, errors.Is(err, ErrInvalidTimer), "timer %d", sec)
	}
}

func TestLoad_IgnoresBadStoredValues(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, KeyName, strings.Repeat("A", 1000)))
	require.NoError(t, kv.Set(ctx, KeyTimer, "forever"))

	s, err := New(kv).Load(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("A", MaxNameLen), s.Name)
	assert.Equal(t, 10, s.Timer)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  Zoe ", "Zoe"},
		{strings.Repeat("é", 25), strings.Repeat("é", 20)},
		{"Captain Cosmo the Great", "Captain Cosmo the Gr"},
		{"nineteen characters  x", "nineteen characters"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in), "input %q", tt.in)
	}
}

func TestTimerCycling(t *testing.T) {
	assert.Equal(t, 15, NextTimer(10))
	assert.Equal(t, 5, NextTimer(20))
	assert.Equal(t, 5, NextTimer(7))
	assert.Equal(t, 5, PrevTimer(10))
	assert.Equal(t, 20, PrevTimer(5))
	assert.Equal(t, 20, PrevTimer(7))
}
