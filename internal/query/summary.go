package query

import (
	"fmt"
	"sort"

	"github.com/Amyn617/Nasa/internal/climatology"
)

// severity orders risk categories for the dominant-risk tie-break: when two
// categories are equally common, the more severe one wins. Unknown never
// outranks a real category.
var severity = map[climatology.RiskCategory]int{
	climatology.RiskUnknown:  0,
	climatology.RiskLow:      1,
	climatology.RiskModerate: 2,
	climatology.RiskHigh:     3,
	climatology.RiskVeryHigh: 4,
}

// summarize aggregates the per-parameter results: success and failure
// counts, key findings (significant trends), and the dominant risk level by
// vote. Findings are sorted by parameter code for stable output.
func summarize(results map[string]ParameterResult) Summary {
	s := Summary{TotalParameters: len(results)}

	counts := make(map[climatology.RiskCategory]int)

	codes := make([]string, 0, len(results))
	for code := range results {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		res := results[code]
		if res.Err != "" {
			s.FailedAnalyses++
			continue
		}
		s.SuccessfulAnalyses++
		counts[res.RiskCategory]++

		if res.RiskAssessment != nil && res.RiskAssessment.Trend.Significant {
			if trend, ok := res.Interpretation["trend"]; ok {
				s.KeyFindings = append(s.KeyFindings, fmt.Sprintf("%s: %s", code, trend))
			}
		}
	}

	for category, n := range counts {
		if s.DominantRiskLevel == "" {
			s.DominantRiskLevel = category
			continue
		}
		best := counts[s.DominantRiskLevel]
		if n > best || (n == best && severity[category] > severity[s.DominantRiskLevel]) {
			s.DominantRiskLevel = category
		}
	}

	return s
}
