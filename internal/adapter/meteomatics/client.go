// Package meteomatics fetches per-year historical weather samples from the
// Meteomatics REST API, with an LRU cache decorator and a deterministic
// synthetic generator for credential-less and data-poor operation.
package meteomatics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/Amyn617/Nasa/internal/observability"
)

// Provider fetches one historical value per year of a weather parameter at a
// location, for a fixed calendar day.
type Provider interface {
	HistoricalSample(ctx context.Context, lat, lon float64, parameter string, dayOfYear, years int) ([]float64, error)
}

// minRealValues is the smallest usable real sample; anything shorter falls
// back to the synthetic generator so the analysis always has data.
const minRealValues = 5

// Client implements Provider against the Meteomatics time-series endpoint.
type Client struct {
	username   string
	password   string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
	fallback   *Synthetic
}

// NewClient creates a Meteomatics API client using HTTP basic auth.
func NewClient(username, password, baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		username: username,
		password: password,
		baseURL:  baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:   logger,
		metrics:  metrics,
		fallback: NewSynthetic(),
	}
}

// HistoricalSample fetches the parameter value on the given day of year for
// each of the last `years` full years. Individual year failures are logged
// and skipped; when fewer than 5 real values survive, the whole sample is
// replaced by a deterministic synthetic one.
func (c *Client) HistoricalSample(ctx context.Context, lat, lon float64, parameter string, dayOfYear, years int) ([]float64, error) {
	currentYear := clock.Now().UTC().Year()

	values := make([]float64, 0, years)
	for year := currentYear - years; year < currentYear; year++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		date := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, dayOfYear-1)
		v, err := c.fetchValue(ctx, lat, lon, parameter, date)
		if err != nil {
			c.metrics.ProviderRequests.WithLabelValues("error").Inc()
			c.logger.Warn("historical fetch failed",
				"parameter", parameter, "year", year, "error", err)
			continue
		}
		c.metrics.ProviderRequests.WithLabelValues("success").Inc()

		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}

	if len(values) < minRealValues {
		c.logger.Warn("insufficient provider data, generating synthetic sample",
			"parameter", parameter, "real_values", len(values), "years", years)
		c.metrics.SyntheticFallbacks.Inc()
		return c.fallback.HistoricalSample(ctx, lat, lon, parameter, dayOfYear, years)
	}
	return values, nil
}

// fetchValue requests a single date/parameter/point value. The endpoint path
// is {base}/{date}T00:00:00Z/{parameter}/{lat},{lon}/json.
func (c *Client) fetchValue(ctx context.Context, lat, lon float64, parameter string, date time.Time) (float64, error) {
	u := fmt.Sprintf("%s/%sT00:00:00Z/%s/%.4f,%.4f/json",
		c.baseURL, date.Format("2006-01-02"), url.PathEscape(parameter), lat, lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("time series request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("meteomatics API error: status %d: %s", resp.StatusCode, body)
	}

	var tsResp response
	if err := json.NewDecoder(resp.Body).Decode(&tsResp); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	if len(tsResp.Data) == 0 || len(tsResp.Data[0].Coordinates) == 0 || len(tsResp.Data[0].Coordinates[0].Dates) == 0 {
		return 0, fmt.Errorf("empty response for %s on %s", parameter, date.Format("2006-01-02"))
	}
	return tsResp.Data[0].Coordinates[0].Dates[0].Value, nil
}

// Meteomatics API response types.

type response struct {
	Status string       `json:"status"`
	Data   []dataSeries `json:"data"`
}

type dataSeries struct {
	Parameter   string       `json:"parameter"`
	Coordinates []coordinate `json:"coordinates"`
}

type coordinate struct {
	Lat   float64     `json:"lat"`
	Lon   float64     `json:"lon"`
	Dates []dateValue `json:"dates"`
}

type dateValue struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
