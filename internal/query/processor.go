package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Amyn617/Nasa/internal/catalog"
	"github.com/Amyn617/Nasa/internal/climatology"
	"github.com/Amyn617/Nasa/internal/observability"
)

// Processor runs analysis queries end to end. The publisher is optional;
// when nil, completed results are not emitted as events.
type Processor struct {
	provider  SampleProvider
	publisher EventPublisher
	logger    *slog.Logger
	metrics   *observability.Metrics

	defaultYears int
}

// NewProcessor creates a query processor.
func NewProcessor(provider SampleProvider, publisher EventPublisher, defaultYears int, logger *slog.Logger, metrics *observability.Metrics) *Processor {
	return &Processor{
		provider:     provider,
		publisher:    publisher,
		logger:       logger,
		metrics:      metrics,
		defaultYears: defaultYears,
	}
}

// Process validates the request, analyzes every requested parameter, and
// returns the assembled result. Parameter failures are recorded in that
// parameter's slot and do not abort the query. The only hard errors are
// invalid input and context cancellation.
func (p *Processor) Process(ctx context.Context, req Request) (Result, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return Result{}, fmt.Errorf("invalid request: %v", errs)
	}

	doy, err := dayOfYear(req.Date)
	if err != nil {
		return Result{}, err
	}

	years := req.Years
	if years == 0 {
		years = p.defaultYears
	}

	start := clock.Now()
	result := Result{
		QueryID:       uuid.NewString(),
		Location:      req.Location,
		QueryDate:     req.Date,
		AnalysisYears: years,
		Parameters:    make(map[string]ParameterResult, len(req.Parameters)),
	}

	for _, code := range req.Parameters {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		result.Parameters[code] = p.analyzeParameter(ctx, req.Location, code, doy, years)
	}

	result.Summary = summarize(result.Parameters)

	p.metrics.QueriesTotal.Inc()
	p.metrics.QueryDuration.Observe(clock.Since(start).Seconds())
	p.logger.Info("query processed",
		"query_id", result.QueryID,
		"parameters", len(req.Parameters),
		"failed", result.Summary.FailedAnalyses,
		"dominant_risk", result.Summary.DominantRiskLevel)

	p.publish(ctx, result)

	return result, nil
}

func (p *Processor) analyzeParameter(ctx context.Context, loc Coordinates, code string, doy, years int) ParameterResult {
	sample, err := p.provider.HistoricalSample(ctx, loc.Lat, loc.Lon, code, doy, years)
	if err != nil {
		p.metrics.ParameterAnalyses.WithLabelValues(code, "error").Inc()
		p.logger.Warn("historical sample unavailable", "parameter", code, "error", err)
		return ParameterResult{Err: fmt.Sprintf("no historical data available: %v", err)}
	}

	estimator, err := climatology.NewEstimator(sample, climatology.DefaultConfidenceLevel)
	if err != nil {
		p.metrics.ParameterAnalyses.WithLabelValues(code, "error").Inc()
		return ParameterResult{Err: err.Error()}
	}

	assessment := estimator.Assess(catalog.ThresholdsFor(code))
	if assessment.Trend.Err != "" {
		p.metrics.DegradedSubresults.WithLabelValues("trend").Inc()
	}
	if assessment.ExtremeValues.Err != "" {
		p.metrics.DegradedSubresults.WithLabelValues("extreme_values").Inc()
	}
	p.metrics.ParameterAnalyses.WithLabelValues(code, "success").Inc()

	return ParameterResult{
		RiskAssessment: &assessment,
		ParameterInfo:  parameterInfo(code),
		Interpretation: interpret(code, assessment),
	}
}

func parameterInfo(code string) *ParameterInfo {
	info := ParameterInfo{Code: code, ThresholdsUsed: catalog.ThresholdsFor(code)}
	if p, ok := catalog.Lookup(code); ok {
		info.Description = p.Description
		info.Units = p.Units
	} else {
		info.Description = code
	}
	return &info
}

func (p *Processor) publish(ctx context.Context, result Result) {
	if p.publisher == nil {
		return
	}

	event := AssessmentEvent{
		QueryID:     result.QueryID,
		GeneratedAt: clock.Now().UTC(),
		Result:      result,
	}
	if err := p.publisher.Publish(ctx, event); err != nil {
		p.metrics.PublishErrors.Inc()
		p.logger.Error("assessment event publish failed", "query_id", result.QueryID, "error", err)
		return
	}
	p.metrics.AssessmentsPublished.Inc()
}
