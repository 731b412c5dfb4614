package query

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amyn617/Nasa/internal/observability"
)

// stubProvider serves canned samples per parameter code.
type stubProvider struct {
	samples map[string][]float64
	errs    map[string]error
	calls   int
}

func (s *stubProvider) HistoricalSample(_ context.Context, _, _ float64, parameter string, _, _ int) ([]float64, error) {
	s.calls++
	if err, ok := s.errs[parameter]; ok {
		return nil, err
	}
	return s.samples[parameter], nil
}

// stubPublisher records published events.
type stubPublisher struct {
	events []AssessmentEvent
	err    error
}

func (s *stubPublisher) Publish(_ context.Context, event AssessmentEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProcessor(provider SampleProvider, publisher EventPublisher) *Processor {
	return NewProcessor(provider, publisher, 30, testLogger(), observability.NewMetricsForTesting())
}

func validRequest() Request {
	return Request{
		Location:   Coordinates{Lat: 40.7128, Lon: -74.0060},
		Date:       "2024-06-15",
		Parameters: []string{"t_2m:C"},
	}
}

func risingTemps(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 15 + 0.5*float64(i)
	}
	return out
}

func TestProcessor_Process_Success(t *testing.T) {
	provider := &stubProvider{samples: map[string][]float64{
		"t_2m:C": {18, 22, 25, 31, 19, 27, 33, 21, 24, 29, 35, 20},
	}}
	p := newTestProcessor(provider, nil)

	result, err := p.Process(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, result.QueryID)
	_, parseErr := uuid.Parse(result.QueryID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "2024-06-15", result.QueryDate)
	assert.Equal(t, 30, result.AnalysisYears)

	res, ok := result.Parameters["t_2m:C"]
	require.True(t, ok)
	require.Empty(t, res.Err)
	require.NotNil(t, res.RiskAssessment)
	assert.Equal(t, 12, res.BasicStats.DataYears)

	require.NotNil(t, res.ParameterInfo)
	assert.Equal(t, "t_2m:C", res.ParameterInfo.Code)
	assert.Equal(t, "C", res.ParameterInfo.Units)
	require.NotNil(t, res.ParameterInfo.ThresholdsUsed.Hot)
	assert.Equal(t, 32.0, *res.ParameterInfo.ThresholdsUsed.Hot)

	// Hot threshold 32 applies: 33 and 35 exceed it.
	require.NotNil(t, res.VeryHotProbability)
	assert.InDelta(t, 2.0/12.0, *res.VeryHotProbability, 1e-12)

	assert.Contains(t, res.Interpretation, "variability")
	assert.Contains(t, res.Interpretation, "risk_level")

	assert.Equal(t, 1, result.Summary.TotalParameters)
	assert.Equal(t, 1, result.Summary.SuccessfulAnalyses)
	assert.Zero(t, result.Summary.FailedAnalyses)
}

func TestProcessor_Process_ParameterFailureIsolated(t *testing.T) {
	provider := &stubProvider{
		samples: map[string][]float64{"t_2m:C": risingTemps(20)},
		errs:    map[string]error{"precip_24h:mm": errors.New("upstream down")},
	}
	p := newTestProcessor(provider, nil)

	req := validRequest()
	req.Parameters = []string{"t_2m:C", "precip_24h:mm"}

	result, err := p.Process(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, result.Parameters["t_2m:C"].Err)
	failed := result.Parameters["precip_24h:mm"]
	assert.Contains(t, failed.Err, "no historical data available")
	assert.Nil(t, failed.RiskAssessment)
	assert.Nil(t, failed.ParameterInfo)

	assert.Equal(t, 2, result.Summary.TotalParameters)
	assert.Equal(t, 1, result.Summary.SuccessfulAnalyses)
	assert.Equal(t, 1, result.Summary.FailedAnalyses)
}

func TestProcessor_Process_FailedParameterJSONShape(t *testing.T) {
	provider := &stubProvider{errs: map[string]error{"t_2m:C": errors.New("boom")}}
	p := newTestProcessor(provider, nil)

	result, err := p.Process(context.Background(), validRequest())
	require.NoError(t, err)

	raw, err := json.Marshal(result.Parameters["t_2m:C"])
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "error")
	assert.NotContains(t, fields, "basic_stats")
	assert.NotContains(t, fields, "risk_category")
}

func TestProcessor_Process_InvalidRequest(t *testing.T) {
	p := newTestProcessor(&stubProvider{}, nil)

	req := validRequest()
	req.Location.Lat = 123

	_, err := p.Process(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
}

func TestProcessor_Process_ExplicitYears(t *testing.T) {
	provider := &stubProvider{samples: map[string][]float64{"t_2m:C": risingTemps(20)}}
	p := newTestProcessor(provider, nil)

	req := validRequest()
	req.Years = 20

	result, err := p.Process(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 20, result.AnalysisYears)
}

func TestProcessor_Process_PublishesEvent(t *testing.T) {
	fixed := time.Date(2024, time.June, 20, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	defer SetClock(nil)

	provider := &stubProvider{samples: map[string][]float64{"t_2m:C": risingTemps(20)}}
	publisher := &stubPublisher{}
	p := newTestProcessor(provider, publisher)

	result, err := p.Process(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, result.QueryID, event.QueryID)
	assert.Equal(t, fixed, event.GeneratedAt)
	assert.Equal(t, result.Summary, event.Result.Summary)
}

func TestProcessor_Process_PublishFailureDoesNotFailQuery(t *testing.T) {
	provider := &stubProvider{samples: map[string][]float64{"t_2m:C": risingTemps(20)}}
	publisher := &stubPublisher{err: errors.New("broker unavailable")}
	p := newTestProcessor(provider, publisher)

	result, err := p.Process(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.SuccessfulAnalyses)
}

func TestProcessor_Process_ContextCancelled(t *testing.T) {
	provider := &stubProvider{samples: map[string][]float64{"t_2m:C": risingTemps(20)}}
	p := newTestProcessor(provider, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Process(ctx, validRequest())
	require.ErrorIs(t, err, context.Canceled)
}

func TestProcessor_Process_KeyFindingsAndDominantRisk(t *testing.T) {
	// Rising series gives a significant increasing trend; the constant-ish
	// series gives none.
	steady := make([]float64, 20)
	for i := range steady {
		steady[i] = 20 + 0.001*float64(i%2)
	}
	provider := &stubProvider{samples: map[string][]float64{
		"t_2m:C":         risingTemps(30),
		"t_max_2m_24h:C": steady,
	}}
	p := newTestProcessor(provider, nil)

	req := validRequest()
	req.Parameters = []string{"t_2m:C", "t_max_2m_24h:C"}

	result, err := p.Process(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, result.Summary.KeyFindings, 1)
	assert.Equal(t, "t_2m:C: Significant increasing trend detected", result.Summary.KeyFindings[0])
	assert.NotEmpty(t, result.Summary.DominantRiskLevel)
}
