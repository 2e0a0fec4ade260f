package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailform/pkg/ratelimiter"
)

func TestMemoryStore_ConsumeTokens(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	config := ratelimiter.Config{
		Capacity:       10,
		RefillRate:     2,
		RefillInterval: 100 * time.Millisecond,
	}

	t.Run("creates new bucket with full capacity", func(t *testing.T) {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		remaining, resetAt, err := store.ConsumeTokens(ctx, "new-key", 3, config)
		assert.NoError(t, err)
		assert.Equal(t, 7, remaining)
		assert.NotZero(t, resetAt)
	})

	t.Run("consumes tokens correctly", func(t *testing.T) {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		key := "test-consume"

		remaining, _, err := store.ConsumeTokens(ctx, key, 4, config)
		assert.NoError(t, err)
		assert.Equal(t, 6, remaining)

		remaining, _, err = store.ConsumeTokens(ctx, key, 3, config)
		assert.NoError(t, err)
		assert.Equal(t, 3, remaining)

		remaining, _, err = store.ConsumeTokens(ctx, key, 5, config)
		assert.NoError(t, err)
		assert.Equal(t, -2, remaining)
	})

	t.Run("denied requests do not drain the bucket", func(t *testing.T) {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		key := "test-hammer"

		remaining, _, err := store.ConsumeTokens(ctx, key, config.Capacity, config)
		require.NoError(t, err)
		require.Equal(t, 0, remaining)

		for range 5 {
			remaining, _, err = store.ConsumeTokens(ctx, key, 1, config)
			require.NoError(t, err)
			assert.Equal(t, -1, remaining)
		}

		time.Sleep(config.RefillInterval + 10*time.Millisecond)

		remaining, _, err = store.ConsumeTokens(ctx, key, config.RefillRate, config)
		assert.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("refills tokens over time", func(t *testing.T) {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		key := "test-refill"

		remaining, _, err := store.ConsumeTokens(ctx, key, config.Capacity, config)
		assert.NoError(t, err)
		assert.Equal(t, 0, remaining)

		time.Sleep(config.RefillInterval + 10*time.Millisecond)

		remaining, _, err = store.ConsumeTokens(ctx, key, 0, config)
		assert.NoError(t, err)
		assert.Equal(t, config.RefillRate, remaining)
	})

	t.Run("caps tokens at capacity", func(t *testing.T) {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		key := "test-cap"

		_, _, err := store.ConsumeTokens(ctx, key, 5, config)
		require.NoError(t, err)

		time.Sleep(config.RefillInterval * 10)

		remaining, _, err := store.ConsumeTokens(ctx, key, 0, config)
		assert.NoError(t, err)
		assert.Equal(t, config.Capacity, remaining)
	})

	t.Run("keys are isolated", func(t *testing.T) {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		remaining, _, err := store.ConsumeTokens(ctx, "key-a", 9, config)
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)

		remaining, _, err = store.ConsumeTokens(ctx, "key-b", 1, config)
		require.NoError(t, err)
		assert.Equal(t, 9, remaining)
	})

	t.Run("reset restores full capacity", func(t *testing.T) {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		key := "test-reset"

		_, _, err := store.ConsumeTokens(ctx, key, config.Capacity, config)
		require.NoError(t, err)

		require.NoError(t, store.Reset(ctx, key))

		remaining, _, err := store.ConsumeTokens(ctx, key, 1, config)
		assert.NoError(t, err)
		assert.Equal(t, config.Capacity-1, remaining)
	})

	t.Run("concurrent consumption is race-free", func(t *testing.T) {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		cfg := ratelimiter.Config{
			Capacity:       1000,
			RefillRate:     1,
			RefillInterval: time.Hour,
		}

		var wg sync.WaitGroup
		for range 100 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, err := store.ConsumeTokens(ctx, "concurrent", 1, cfg)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		remaining, _, err := store.ConsumeTokens(ctx, "concurrent", 0, cfg)
		require.NoError(t, err)
		assert.Equal(t, 900, remaining)
	})
}

func TestMemoryStore_Close(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore()
	store.Close()
	store.Close() // repeated close must not panic
}
