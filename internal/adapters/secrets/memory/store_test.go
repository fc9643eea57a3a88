package memory

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "medicapp/default/access_token", "a1"))

	value, err := store.Get(ctx, "medicapp/default/access_token")
	require.NoError(t, err)
	assert.Equal(t, "a1", value)

	require.NoError(t, store.Delete(ctx, "medicapp/default/access_token"))

	_, err = store.Get(ctx, "medicapp/default/access_token")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreEntriesExpire(t *testing.T) {
	t.Parallel()

	store := NewStore(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", "v"))
	require.Eventually(t, func() bool {
		_, err := store.Get(ctx, "k")
		return err != nil
	}, time.Second, 10*time.Millisecond)
}

func TestStoreFlushDropsEverything(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "a", "1"))
	require.NoError(t, store.Put(ctx, "b", "2"))

	store.Flush()

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
	_, err = store.Get(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}
