package climatology

import (
	"encoding/json"
	"math"
)

// DefaultConfidenceLevel is used when the caller does not supply a
// confidence level for the interval of the mean.
const DefaultConfidenceLevel = 0.95

// ReturnPeriodYears is a return period in years. It marshals +Inf (an event
// never observed beyond the threshold) as JSON null, since JSON has no
// infinity literal; unmarshaling null restores +Inf.
type ReturnPeriodYears float64

func (y ReturnPeriodYears) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(y), 1) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(y))
}

func (y *ReturnPeriodYears) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*y = ReturnPeriodYears(math.Inf(1))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*y = ReturnPeriodYears(v)
	return nil
}

// RiskAssessment is the full output record for one variable. Threshold
// fields are present only when the corresponding ThresholdSet entry was
// configured. Sub-results degrade independently; a failed trend or
// extreme-value fit never blanks the rest of the record.
type RiskAssessment struct {
	BasicStats  BasicStats  `json:"basic_stats"`
	Percentiles Percentiles `json:"percentiles"`
	Trend       TrendResult `json:"trend_analysis"`

	VeryHotProbability     *float64           `json:"very_hot_probability,omitempty"`
	HotReturnPeriod        *ReturnPeriodYears `json:"hot_return_period,omitempty"`
	VeryColdProbability    *float64           `json:"very_cold_probability,omitempty"`
	ColdReturnPeriod       *ReturnPeriodYears `json:"cold_return_period,omitempty"`
	ComfortableProbability *float64           `json:"comfortable_probability,omitempty"`

	ExtremeValues          ExtremeValueResult `json:"extreme_values"`
	RiskCategory           RiskCategory       `json:"risk_category"`
	MeanConfidenceInterval ConfidenceInterval `json:"mean_confidence_interval"`

	// LowConfidence flags samples shorter than 10 years; computation is
	// unchanged, the results are just less reliable.
	LowConfidence bool `json:"low_confidence,omitempty"`
}

// Estimator computes risk assessments over one immutable sample. It is
// stateless apart from the sample and safe to discard after use; callers
// analyzing several variables construct one Estimator per variable.
type Estimator struct {
	sample     Sample
	confidence float64
}

// NewEstimator cleans the raw series and builds an estimator. The
// confidence level applies to the interval of the mean; values outside
// (0,1) fall back to DefaultConfidenceLevel. Returns ErrNoValidData when
// the cleaned sample is empty.
func NewEstimator(raw []float64, confidence float64) (*Estimator, error) {
	sample, err := NewSample(raw)
	if err != nil {
		return nil, err
	}
	if confidence <= 0 || confidence >= 1 {
		confidence = DefaultConfidenceLevel
	}
	return &Estimator{sample: sample, confidence: confidence}, nil
}

// Sample returns the estimator's cleaned sample.
func (e *Estimator) Sample() Sample { return e.sample }

// Assess runs every analysis over the sample and assembles the composite
// record. Each sub-computation is independent: degenerate trend or
// extreme-value fits surface as error notes in their own sub-record while
// everything else is still populated. Identical inputs produce
// bit-identical assessments.
func (e *Estimator) Assess(thresholds ThresholdSet) RiskAssessment {
	basic := e.sample.BasicStats()

	a := RiskAssessment{
		BasicStats:             basic,
		Percentiles:            e.sample.Percentiles(),
		Trend:                  e.sample.DetectTrend(),
		ExtremeValues:          e.sample.ExtremeValues(),
		RiskCategory:           categorizeRisk(basic.StdDev, basic.Mean),
		MeanConfidenceInterval: e.sample.ConfidenceInterval(e.confidence),
		LowConfidence:          e.sample.LowConfidence(),
	}

	if thresholds.Hot != nil {
		p := e.sample.Probability(*thresholds.Hot, Exceeds)
		rp := ReturnPeriodYears(e.sample.ReturnPeriod(*thresholds.Hot, Exceeds))
		a.VeryHotProbability = &p
		a.HotReturnPeriod = &rp
	}
	if thresholds.Cold != nil {
		p := e.sample.Probability(*thresholds.Cold, Below)
		rp := ReturnPeriodYears(e.sample.ReturnPeriod(*thresholds.Cold, Below))
		a.VeryColdProbability = &p
		a.ColdReturnPeriod = &rp
	}
	if thresholds.Comfortable != nil {
		p := e.sample.ComfortableProbability(thresholds.Comfortable.Min, thresholds.Comfortable.Max)
		a.ComfortableProbability = &p
	}

	return a
}
