// Command genfixtures generates deterministic risk-assessment fixtures for
// every built-in location and thresholded parameter, using the synthetic
// sample generator. The output is stable across runs, so test suites and
// demos can assert against it.
//
// Usage:
//
//	go run ./cmd/genfixtures -out data/fixtures/assessments.json -years 30
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Amyn617/Nasa/internal/adapter/meteomatics"
	"github.com/Amyn617/Nasa/internal/catalog"
	"github.com/Amyn617/Nasa/internal/climatology"
)

// fixtureDate anchors the day of year for all generated samples.
var fixtureDate = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

// fixture is one location/parameter assessment in the output file.
type fixture struct {
	Location   string                     `json:"location"`
	Parameter  string                     `json:"parameter"`
	Date       string                     `json:"date"`
	Years      int                        `json:"years"`
	Assessment climatology.RiskAssessment `json:"assessment"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the fixtures JSON")
	years := flag.Int("years", 30, "years of synthetic history per sample")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	gen := meteomatics.NewSynthetic()
	doy := fixtureDate.YearDay()
	ctx := context.Background()

	var fixtures []fixture
	for _, loc := range catalog.Locations() {
		for _, param := range catalog.Parameters() {
			sample, err := gen.HistoricalSample(ctx, loc.Lat, loc.Lon, param.Code, doy, *years)
			if err != nil {
				return fmt.Errorf("generate %s at %s: %w", param.Code, loc.Name, err)
			}

			estimator, err := climatology.NewEstimator(sample, climatology.DefaultConfidenceLevel)
			if err != nil {
				return fmt.Errorf("estimator for %s at %s: %w", param.Code, loc.Name, err)
			}

			fixtures = append(fixtures, fixture{
				Location:   loc.Name,
				Parameter:  param.Code,
				Date:       fixtureDate.Format("2006-01-02"),
				Years:      *years,
				Assessment: estimator.Assess(param.Thresholds),
			})
		}
	}

	if err := writeJSON(*out, fixtures); err != nil {
		return fmt.Errorf("writing fixtures: %w", err)
	}
	log.Printf("wrote %d fixtures: %s", len(fixtures), *out)

	printStats(fixtures)
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(fixtures []fixture) {
	riskCounts := map[climatology.RiskCategory]int{}
	var significantTrends, degradedFits, lowConfidence int
	for i := range fixtures {
		a := &fixtures[i].Assessment
		riskCounts[a.RiskCategory]++
		if a.Trend.Significant {
			significantTrends++
		}
		if a.ExtremeValues.Err != "" {
			degradedFits++
		}
		if a.LowConfidence {
			lowConfidence++
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(fixtures))
	fmt.Printf("By risk: Low=%d, Moderate=%d, High=%d, Very High=%d, Unknown=%d\n",
		riskCounts[climatology.RiskLow], riskCounts[climatology.RiskModerate],
		riskCounts[climatology.RiskHigh], riskCounts[climatology.RiskVeryHigh],
		riskCounts[climatology.RiskUnknown])
	fmt.Printf("Significant trends: %d\n", significantTrends)
	fmt.Printf("Degraded extreme-value fits: %d\n", degradedFits)
	fmt.Printf("Low confidence samples: %d\n", lowConfidence)
}
