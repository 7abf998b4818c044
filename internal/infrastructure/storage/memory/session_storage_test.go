package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageRoundTrip(t *testing.T) {
	storage := NewMemorySessionStorage()
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "token", "tok-123"))

	value, ok, err := storage.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-123", value)
}

func TestMemoryStorageAbsence(t *testing.T) {
	storage := NewMemorySessionStorage()
	ctx := context.Background()

	_, ok, err := storage.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, storage.Set(ctx, "token", "tok"))
	require.NoError(t, storage.Delete(ctx, "token"))

	_, ok, err = storage.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	storage := NewMemorySessionStorage()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = storage.Set(ctx, "token", "tok")
		}()
		go func() {
			defer wg.Done()
			_, _, _ = storage.Get(ctx, "token")
		}()
	}
	wg.Wait()
}
