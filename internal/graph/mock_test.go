package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockDriver_RequiresConnect(t *testing.T) {
	m := NewMockDriver()
	_, err := m.Query(context.Background(), "MATCH (n) RETURN n", nil)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestMockDriver_ScriptOrder(t *testing.T) {
	m := NewMockDriver()
	m.Enqueue(&Result{Headers: []string{"a"}, Rows: []map[string]any{{"a": 1}}}, nil)
	m.Enqueue(nil, errors.New("boom"))

	ctx := context.Background()
	require.NoError(t, m.Connect(ctx))

	res, err := m.Query(ctx, "first", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count())

	_, err = m.Query(ctx, "second", nil)
	assert.EqualError(t, err, "boom")

	// Script exhausted: empty result, no error.
	res, err = m.Query(ctx, "third", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count())

	assert.Equal(t, []string{"first", "second", "third"}, m.Queries())
}

func TestMockDriver_ConnectErr(t *testing.T) {
	m := NewMockDriver()
	m.ConnectErr = errors.New("refused")
	assert.Error(t, m.Connect(context.Background()))
}

func TestMockDriver_Close(t *testing.T) {
	m := NewMockDriver()
	ctx := context.Background()
	require.NoError(t, m.Connect(ctx))
	require.NoError(t, m.Close())
	assert.True(t, m.Closed())

	_, err := m.Query(ctx, "after close", nil)
	assert.ErrorIs(t, err, ErrNotConnected)
}
