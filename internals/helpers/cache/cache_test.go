package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledCache_AlwaysLoads(t *testing.T) {
	c := New(nil, "ucentric")
	assert.False(t, c.Enabled())

	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"a"}, nil
	}
	for i := 0; i < 2; i++ {
		v, err := Remember(context.Background(), c, "k", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, v)
	}
	assert.Equal(t, 2, calls)

	c.Delete(context.Background(), "k")
	assert.NoError(t, c.Close())
}

func TestRemember_PropagatesLoadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Remember(context.Background(), New(nil, ""), "k", time.Minute, func(context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestConnect_EmptyURLDisables(t *testing.T) {
	c, err := Connect(context.Background(), "  ", "x")
	require.NoError(t, err)
	assert.False(t, c.Enabled())
}

func TestKeyPrefix(t *testing.T) {
	assert.Equal(t, "p:k", New(nil, "p").key("k"))
	assert.Equal(t, "k", New(nil, "").key("k"))
}
