package meteomatics

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Amyn617/Nasa/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUsername      = "acme_weather"
	testPassword      = "s3cret"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testMetrics() *observability.Metrics {
	return observability.NewMetricsForTesting()
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(baseURL string) *Client {
	return NewClient(testUsername, testPassword, baseURL, 5*time.Second, testLogger(), testMetrics())
}

func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	SetClock(clockwork.NewFakeClockAt(at))
	t.Cleanup(func() { SetClock(nil) })
}

func singleValueResponse(parameter string, value float64) response {
	return response{
		Status: "OK",
		Data: []dataSeries{
			{
				Parameter: parameter,
				Coordinates: []coordinate{
					{Lat: 40.7128, Lon: -74.0060, Dates: []dateValue{{Date: "2020-06-15T00:00:00Z", Value: value}}},
				},
			},
		},
	}
}

func TestClient_HistoricalSample_Success(t *testing.T) {
	freezeTime(t, time.Date(2024, time.April, 26, 15, 10, 0, 0, time.UTC))

	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, testUsername, user)
		assert.Equal(t, testPassword, pass)

		paths = append(paths, r.URL.Path)
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(singleValueResponse("t_2m:C", 21.5)))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	// Day 167 of a non-leap year is June 16.
	sample, err := c.HistoricalSample(context.Background(), 40.7128, -74.0060, "t_2m:C", 167, 10)
	require.NoError(t, err)

	require.Len(t, sample, 10)
	for _, v := range sample {
		assert.Equal(t, 21.5, v)
	}

	require.Len(t, paths, 10)
	assert.Equal(t, "/2014-06-16T00:00:00Z/t_2m:C/40.7128,-74.0060/json", paths[0])
	assert.Equal(t, "/2023-06-16T00:00:00Z/t_2m:C/40.7128,-74.0060/json", paths[9])
}

func TestClient_HistoricalSample_SkipsFailedYears(t *testing.T) {
	freezeTime(t, time.Date(2024, time.April, 26, 0, 0, 0, 0, time.UTC))

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Every third year fails upstream.
		if calls.Add(1)%3 == 0 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(singleValueResponse("t_2m:C", 19.0)))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	sample, err := c.HistoricalSample(context.Background(), 40.7128, -74.0060, "t_2m:C", 100, 12)
	require.NoError(t, err)

	// 12 attempts, every third dropped.
	assert.Len(t, sample, 8)
	for _, v := range sample {
		assert.Equal(t, 19.0, v)
	}
}

func TestClient_HistoricalSample_SyntheticFallback(t *testing.T) {
	freezeTime(t, time.Date(2024, time.April, 26, 0, 0, 0, 0, time.UTC))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Not Authorized"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	sample, err := c.HistoricalSample(context.Background(), 40.7128, -74.0060, "t_2m:C", 100, 15)
	require.NoError(t, err)

	// Fallback still yields one value per requested year, deterministically.
	require.Len(t, sample, 15)
	want, err := NewSynthetic().HistoricalSample(context.Background(), 40.7128, -74.0060, "t_2m:C", 100, 15)
	require.NoError(t, err)
	assert.Equal(t, want, sample)
}

func TestClient_HistoricalSample_FallbackBelowMinimum(t *testing.T) {
	freezeTime(t, time.Date(2024, time.April, 26, 0, 0, 0, 0, time.UTC))

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Only the first four years succeed, one short of the minimum.
		if calls.Add(1) > 4 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(singleValueResponse("t_2m:C", 22.0)))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	sample, err := c.HistoricalSample(context.Background(), 40.7128, -74.0060, "t_2m:C", 100, 20)
	require.NoError(t, err)

	assert.Len(t, sample, 20)
	assert.NotContains(t, sample, 22.0)
}

func TestClient_HistoricalSample_ContextCancelled(t *testing.T) {
	freezeTime(t, time.Date(2024, time.April, 26, 0, 0, 0, 0, time.UTC))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(singleValueResponse("t_2m:C", 20.0)))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := testClient(srv.URL)
	_, err := c.HistoricalSample(ctx, 40.7128, -74.0060, "t_2m:C", 100, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_HistoricalSample_EmptyResponseCountsAsFailure(t *testing.T) {
	freezeTime(t, time.Date(2024, time.April, 26, 0, 0, 0, 0, time.UTC))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(response{Status: "OK"}))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	sample, err := c.HistoricalSample(context.Background(), 40.7128, -74.0060, "t_2m:C", 100, 10)
	require.NoError(t, err)

	// All years empty, so the synthetic fallback serves the sample.
	assert.Len(t, sample, 10)
}

func TestClient_LeapYearDayAlignment(t *testing.T) {
	freezeTime(t, time.Date(2024, time.April, 26, 0, 0, 0, 0, time.UTC))

	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(singleValueResponse("t_2m:C", 5.0)))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	// Day 60 is Feb 29 in a leap year, Mar 1 otherwise.
	_, err := c.HistoricalSample(context.Background(), 48.8566, 2.3522, "t_2m:C", 60, 5)
	require.NoError(t, err)

	require.Len(t, paths, 5)
	assert.Contains(t, paths[1], "/2020-02-29T00:00:00Z/") // leap year
	assert.Contains(t, paths[2], "/2021-03-01T00:00:00Z/")
}
