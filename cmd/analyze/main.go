// Command analyze runs a single climatological analysis query from the
// command line and prints the result as JSON. It talks to Meteomatics when
// credentials are configured and falls back to the deterministic synthetic
// generator otherwise, so it works offline.
//
// Usage:
//
//	go run ./cmd/analyze \
//	  -lat 40.7128 -lon -74.0060 \
//	  -date 2024-06-15 \
//	  -params t_2m:C,precip_24h:mm \
//	  -years 30
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Amyn617/Nasa/internal/adapter/meteomatics"
	"github.com/Amyn617/Nasa/internal/config"
	"github.com/Amyn617/Nasa/internal/observability"
	"github.com/Amyn617/Nasa/internal/query"
)

func main() {
	if code := run(); code != 0 {
		os.Exit(code)
	}
}

func run() int {
	lat := flag.Float64("lat", 0, "latitude of the location")
	lon := flag.Float64("lon", 0, "longitude of the location")
	date := flag.String("date", "", "calendar date to analyze (YYYY-MM-DD)")
	params := flag.String("params", "t_2m:C", "comma-separated parameter codes")
	years := flag.Int("years", 0, "years of history to sample (0 uses the configured default)")
	pretty := flag.Bool("pretty", true, "indent the JSON output")
	flag.Parse()

	if *date == "" {
		flag.Usage()
		fmt.Fprintln(os.Stderr, "missing required flag: -date")
		return 1
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	logger := observability.NewLogger("warn", "text")
	metrics := observability.NewMetricsForTesting()

	var provider query.SampleProvider
	if cfg.ProviderConfigured() {
		client := meteomatics.NewClient(
			cfg.MeteomaticsUsername, cfg.MeteomaticsPassword, cfg.MeteomaticsBaseURL,
			cfg.MeteomaticsTimeout, logger, metrics)
		provider = meteomatics.NewCachedProvider(client, cfg.ProviderCacheSize, metrics)
	} else {
		fmt.Fprintln(os.Stderr, "note: no meteomatics credentials, using synthetic data")
		provider = meteomatics.NewSynthetic()
	}

	processor := query.NewProcessor(provider, nil, cfg.AnalysisYears, logger, metrics)

	req := query.Request{
		Location:   query.Coordinates{Lat: *lat, Lon: *lon},
		Date:       *date,
		Parameters: splitParams(*params),
		Years:      *years,
	}

	result, err := processor.Process(context.Background(), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analysis failed: %v\n", err)
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		return 1
	}
	return 0
}

func splitParams(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
