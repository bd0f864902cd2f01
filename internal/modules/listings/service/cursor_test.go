package service

import (
	"context"
	"testing"

	"accum_scanner/internal/modules/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorDefaultsToFirstPage(t *testing.T) {
	c := NewCursor(kvstore.NewMemory(64))

	page, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, page)
}

func TestCursorSetGetReset(t *testing.T) {
	ctx := context.Background()
	c := NewCursor(kvstore.NewMemory(64))

	require.NoError(t, c.Set(ctx, 7))
	page, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, page)

	require.NoError(t, c.Reset(ctx))
	page, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, page, "after reset the next read is page 1")
}
