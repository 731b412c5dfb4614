package query

import (
	"fmt"
	"math"
	"strings"

	"github.com/Amyn617/Nasa/internal/climatology"
)

// interpret renders an assessment into short human-readable statements keyed
// by aspect: variability, trend, typical_conditions (for families with known
// comfort ranges), and risk_level.
func interpret(parameter string, a climatology.RiskAssessment) map[string]string {
	out := make(map[string]string, 4)

	mean := a.BasicStats.Mean
	cv := 0.0
	if mean != 0 {
		cv = a.BasicStats.StdDev / math.Abs(mean)
	}
	switch {
	case cv < 0.1:
		out["variability"] = "Very consistent conditions"
	case cv < 0.2:
		out["variability"] = "Fairly consistent conditions"
	case cv < 0.3:
		out["variability"] = "Moderate variability"
	default:
		out["variability"] = "High variability"
	}

	if a.Trend.Significant {
		out["trend"] = fmt.Sprintf("Significant %s trend detected", a.Trend.Direction)
	} else {
		out["trend"] = "No significant trend detected"
	}

	family, _, _ := strings.Cut(parameter, ":")
	family = strings.ToLower(family)
	switch {
	case strings.Contains(family, "t_2m"):
		switch {
		case mean < 10:
			out["typical_conditions"] = "Typically cold conditions"
		case mean > 25:
			out["typical_conditions"] = "Typically warm conditions"
		default:
			out["typical_conditions"] = "Typically mild conditions"
		}
	case strings.Contains(family, "precip"):
		switch {
		case mean < 1:
			out["typical_conditions"] = "Typically dry conditions"
		case mean > 10:
			out["typical_conditions"] = "Typically wet conditions"
		default:
			out["typical_conditions"] = "Typically moderate precipitation"
		}
	case strings.Contains(family, "wind"):
		switch {
		case mean < 15:
			out["typical_conditions"] = "Typically calm conditions"
		case mean > 30:
			out["typical_conditions"] = "Typically windy conditions"
		default:
			out["typical_conditions"] = "Typically moderate wind"
		}
	}

	out["risk_level"] = fmt.Sprintf("Risk level: %s", a.RiskCategory)

	return out
}
