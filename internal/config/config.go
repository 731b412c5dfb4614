package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Meteomatics provider configuration.
	MeteomaticsUsername string
	MeteomaticsPassword string
	MeteomaticsBaseURL  string
	MeteomaticsTimeout  time.Duration
	ProviderCacheSize   int

	// AnalysisYears is how many historical years each query samples.
	AnalysisYears int

	// Kafka assessment-event publishing configuration.
	KafkaEnabled   bool
	KafkaBrokers   []string
	KafkaSinkTopic string
}

const (
	minAnalysisYears = 10
	maxAnalysisYears = 50
)

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	providerTimeout, err := parseDuration("METEOMATICS_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	analysisYears, err := parsePositiveInt("ANALYSIS_YEARS", 30)
	if err != nil {
		return nil, err
	}
	if analysisYears < minAnalysisYears || analysisYears > maxAnalysisYears {
		return nil, errors.New("ANALYSIS_YEARS must be between 10 and 50")
	}

	cacheSize, err := parsePositiveInt("PROVIDER_CACHE_SIZE", 100)
	if err != nil {
		return nil, err
	}

	kafkaEnabled := envOrDefault("KAFKA_ENABLED", "false") == "true"

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		MeteomaticsUsername: os.Getenv("METEOMATICS_USERNAME"),
		MeteomaticsPassword: os.Getenv("METEOMATICS_PASSWORD"),
		MeteomaticsBaseURL:  envOrDefault("METEOMATICS_BASE_URL", "https://api.meteomatics.com"),
		MeteomaticsTimeout:  providerTimeout,
		ProviderCacheSize:   cacheSize,

		AnalysisYears: analysisYears,

		KafkaEnabled:   kafkaEnabled,
		KafkaBrokers:   parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic: envOrDefault("KAFKA_SINK_TOPIC", "climate-risk-assessments"),
	}

	if (cfg.MeteomaticsUsername == "") != (cfg.MeteomaticsPassword == "") {
		return nil, errors.New("METEOMATICS_USERNAME and METEOMATICS_PASSWORD must be set together")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.KafkaEnabled && cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_SINK_TOPIC is empty")
	}

	return cfg, nil
}

// ProviderConfigured reports whether Meteomatics credentials are present.
// Without them every query is served from the deterministic synthetic
// generator.
func (c *Config) ProviderConfigured() bool {
	return c.MeteomaticsUsername != "" && c.MeteomaticsPassword != ""
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}

func parseBrokers(s string) []string {
	var out []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
