package meteomatics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthetic_Deterministic(t *testing.T) {
	gen := NewSynthetic()

	first, err := gen.HistoricalSample(context.Background(), 40.7128, -74.0060, "t_2m:C", 167, 30)
	require.NoError(t, err)
	second, err := gen.HistoricalSample(context.Background(), 40.7128, -74.0060, "t_2m:C", 167, 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 30)
}

func TestSynthetic_KeyedByRequest(t *testing.T) {
	gen := NewSynthetic()
	base, err := gen.HistoricalSample(context.Background(), 40.7128, -74.0060, "t_2m:C", 167, 30)
	require.NoError(t, err)

	t.Run("different location", func(t *testing.T) {
		other, err := gen.HistoricalSample(context.Background(), 51.5074, -0.1278, "t_2m:C", 167, 30)
		require.NoError(t, err)
		assert.NotEqual(t, base, other)
	})

	t.Run("different day", func(t *testing.T) {
		other, err := gen.HistoricalSample(context.Background(), 40.7128, -74.0060, "t_2m:C", 15, 30)
		require.NoError(t, err)
		assert.NotEqual(t, base, other)
	})

	t.Run("different parameter", func(t *testing.T) {
		other, err := gen.HistoricalSample(context.Background(), 40.7128, -74.0060, "t_max_2m_24h:C", 167, 30)
		require.NoError(t, err)
		assert.NotEqual(t, base, other)
	})
}

func TestSynthetic_ParameterFamilies(t *testing.T) {
	gen := NewSynthetic()
	ctx := context.Background()

	t.Run("temperature centers around 20", func(t *testing.T) {
		sample, err := gen.HistoricalSample(ctx, 40.7128, -74.0060, "t_2m:C", 167, 200)
		require.NoError(t, err)

		var sum float64
		for _, v := range sample {
			sum += v
		}
		assert.InDelta(t, 20.0, sum/float64(len(sample)), 2.0)
	})

	t.Run("precipitation is non-negative", func(t *testing.T) {
		sample, err := gen.HistoricalSample(ctx, 19.0760, 72.8777, "precip_24h:mm", 200, 200)
		require.NoError(t, err)
		for _, v := range sample {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	})

	t.Run("wind is positive", func(t *testing.T) {
		sample, err := gen.HistoricalSample(ctx, -33.8688, 151.2093, "wind_speed_10m:ms", 300, 200)
		require.NoError(t, err)
		for _, v := range sample {
			assert.Greater(t, v, 0.0)
		}
	})
}

func TestSynthetic_InvalidYears(t *testing.T) {
	gen := NewSynthetic()
	_, err := gen.HistoricalSample(context.Background(), 0, 0, "t_2m:C", 1, 0)
	require.Error(t, err)
}
