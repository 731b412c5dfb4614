package meteomatics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider counts calls and returns a canned sample or error.
type stubProvider struct {
	calls  int
	sample []float64
	err    error
}

func (s *stubProvider) HistoricalSample(context.Context, float64, float64, string, int, int) ([]float64, error) {
	s.calls++
	return s.sample, s.err
}

func TestCachedProvider_HitAndMiss(t *testing.T) {
	stub := &stubProvider{sample: []float64{1, 2, 3}}
	cached := NewCachedProvider(stub, 10, testMetrics())
	ctx := context.Background()

	first, err := cached.HistoricalSample(ctx, 40.7128, -74.0060, "t_2m:C", 167, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, first)
	assert.Equal(t, 1, stub.calls)

	second, err := cached.HistoricalSample(ctx, 40.7128, -74.0060, "t_2m:C", 167, 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, stub.calls, "second identical request must be served from cache")

	_, err = cached.HistoricalSample(ctx, 40.7128, -74.0060, "t_2m:C", 168, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.calls, "changing any key component misses the cache")
}

func TestCachedProvider_ReturnsCopies(t *testing.T) {
	stub := &stubProvider{sample: []float64{1, 2, 3}}
	cached := NewCachedProvider(stub, 10, testMetrics())
	ctx := context.Background()

	first, err := cached.HistoricalSample(ctx, 0, 0, "t_2m:C", 1, 3)
	require.NoError(t, err)
	first[0] = 999

	second, err := cached.HistoricalSample(ctx, 0, 0, "t_2m:C", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, second)
}

func TestCachedProvider_ErrorsNotCached(t *testing.T) {
	stub := &stubProvider{err: errors.New("upstream down")}
	cached := NewCachedProvider(stub, 10, testMetrics())
	ctx := context.Background()

	_, err := cached.HistoricalSample(ctx, 0, 0, "t_2m:C", 1, 3)
	require.Error(t, err)
	_, err = cached.HistoricalSample(ctx, 0, 0, "t_2m:C", 1, 3)
	require.Error(t, err)

	assert.Equal(t, 2, stub.calls, "failed lookups must be retried")
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newLRUCache(2)
	c.put("a", []float64{1})
	c.put("b", []float64{2})

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.get("a")
	require.True(t, ok)

	c.put("c", []float64{3})

	_, ok = c.get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	c := newLRUCache(2)
	c.put("a", []float64{1})
	c.put("a", []float64{1, 2})

	got, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, got)
	assert.Len(t, c.entries, 1)
}
