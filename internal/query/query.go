// Package query coordinates multi-parameter climatological analyses: it
// validates a request, fetches one historical sample per parameter, runs the
// risk assessment over each, and assembles the per-parameter results with
// interpretations and an overall summary. Parameter failures are isolated;
// one bad parameter never fails the query.
package query

import (
	"context"
	"time"

	"github.com/Amyn617/Nasa/internal/climatology"
)

// SampleProvider fetches one historical value per year of a weather
// parameter at a location, for a fixed calendar day.
type SampleProvider interface {
	HistoricalSample(ctx context.Context, lat, lon float64, parameter string, dayOfYear, years int) ([]float64, error)
}

// EventPublisher emits completed assessment events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event AssessmentEvent) error
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Request is one analysis query: a location, a calendar date, and the
// parameter codes to analyze. Years of 0 means the configured default.
type Request struct {
	Location   Coordinates `json:"location"`
	Date       string      `json:"date"`
	Parameters []string    `json:"parameters"`
	Years      int         `json:"analysis_years,omitempty"`
}

// ParameterInfo describes the analyzed parameter and the thresholds applied.
type ParameterInfo struct {
	Code           string                   `json:"code"`
	Description    string                   `json:"description"`
	Units          string                   `json:"units"`
	ThresholdsUsed climatology.ThresholdSet `json:"thresholds_used"`
}

// ParameterResult is one parameter's assessment. On failure only Err is set;
// the embedded assessment fields are absent from the JSON encoding.
type ParameterResult struct {
	*climatology.RiskAssessment

	ParameterInfo  *ParameterInfo    `json:"parameter_info,omitempty"`
	Interpretation map[string]string `json:"interpretation,omitempty"`
	Err            string            `json:"error,omitempty"`
}

// Result is the complete answer to one query.
type Result struct {
	QueryID       string                     `json:"query_id"`
	Location      Coordinates                `json:"location"`
	QueryDate     string                     `json:"query_date"`
	AnalysisYears int                        `json:"analysis_years"`
	Parameters    map[string]ParameterResult `json:"parameters"`
	Summary       Summary                    `json:"summary"`
}

// Summary aggregates over the per-parameter results.
type Summary struct {
	TotalParameters    int                      `json:"total_parameters"`
	SuccessfulAnalyses int                      `json:"successful_analyses"`
	FailedAnalyses     int                      `json:"failed_analyses"`
	KeyFindings        []string                 `json:"key_findings,omitempty"`
	DominantRiskLevel  climatology.RiskCategory `json:"dominant_risk_level,omitempty"`
}

// AssessmentEvent is the record published for each completed query.
type AssessmentEvent struct {
	QueryID     string    `json:"query_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Result      Result    `json:"result"`
}
