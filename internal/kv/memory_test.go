package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "report:1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "report:1", []byte(`{"a":1}`)))
	v, ok, err := m.Get(ctx, "report:1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), v)

	require.NoError(t, m.Delete(ctx, "report:1"))
	require.NoError(t, m.Delete(ctx, "report:1")) // idempotent
	_, ok, err = m.Get(ctx, "report:1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryScanPrefix(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, "report:b", []byte("b")))
	require.NoError(t, m.Set(ctx, "user:x", []byte("x")))
	require.NoError(t, m.Set(ctx, "report:a", []byte("a")))

	values, err := m.ScanPrefix(ctx, "report:")
	require.NoError(t, err)
	// insertion order, other prefixes excluded
	assert.Equal(t, [][]byte{[]byte("b"), []byte("a")}, values)

	empty, err := m.ScanPrefix(ctx, "missing:")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryValueIsolation(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	buf := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", buf))
	buf[0] = 'z'

	v, _, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)

	v[0] = 'z'
	again, _, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
