package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueStore(t *testing.T) {
	ctx := context.Background()
	store := NewKeyValueStore()

	_, found, err := store.Load(ctx, "assets")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, "assets", "[]"))
	require.NoError(t, store.Save(ctx, "assets", `[{"name":"Home"}]`))

	value, found, err := store.Load(ctx, "assets")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"name":"Home"}]`, value)
}
