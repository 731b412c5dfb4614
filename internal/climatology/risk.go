package climatology

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// RiskCategory is a coarse four-level variability signal derived from the
// coefficient of variation. It is not a calibrated risk score.
type RiskCategory string

const (
	RiskLow      RiskCategory = "Low"
	RiskModerate RiskCategory = "Moderate"
	RiskHigh     RiskCategory = "High"
	RiskVeryHigh RiskCategory = "Very High"
	RiskUnknown  RiskCategory = "Unknown"
)

// categorizeRisk maps the coefficient of variation cv = std/|mean| to a
// category. Bands are evaluated top-down; boundary values land in the higher
// band (cv == 0.1 is Moderate, not Low). A zero mean yields cv = +Inf and
// therefore Very High. Non-finite inputs other than the deliberate +Inf
// yield Unknown.
func categorizeRisk(stdDev, mean float64) RiskCategory {
	if math.IsNaN(stdDev) || math.IsNaN(mean) {
		return RiskUnknown
	}

	cv := math.Inf(1)
	if mean != 0 {
		cv = stdDev / math.Abs(mean)
	}

	switch {
	case cv < 0.1:
		return RiskLow
	case cv < 0.3:
		return RiskModerate
	case cv < 0.5:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

// ConfidenceInterval is a symmetric interval about the sample mean.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Level float64 `json:"confidence_level"`
}

// ConfidenceInterval estimates the interval for the population mean at the
// given confidence level in (0,1). The standard error uses the sample
// (Bessel-corrected) standard deviation; the critical value comes from the
// Student t distribution with n-1 degrees of freedom for n < 30 and from the
// standard normal otherwise.
//
// Samples of a single observation return a zero-width interval at the mean.
func (s Sample) ConfidenceInterval(level float64) ConfidenceInterval {
	mean, _ := stats.Mean(s.values)

	n := len(s.values)
	if n < 2 {
		return ConfidenceInterval{Lower: mean, Upper: mean, Level: level}
	}

	se := s.sampleStdDev() / math.Sqrt(float64(n))

	alpha := 1 - level
	var critical float64
	if n < 30 {
		critical = distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}.Quantile(1 - alpha/2)
	} else {
		critical = distuv.UnitNormal.Quantile(1 - alpha/2)
	}

	margin := critical * se
	return ConfidenceInterval{Lower: mean - margin, Upper: mean + margin, Level: level}
}
