package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all tool settings, populated from environment variables.
// Input file selection stays on command-line flags.
type Config struct {
	LogLevel  string
	LogFormat string

	// MetricsAddr enables the /healthz + /metrics endpoint when non-empty.
	MetricsAddr string

	// Kafka publishing configuration. Publishing is available only when
	// KAFKA_BROKERS is set.
	KafkaBrokers   []string
	KafkaSinkTopic string
}

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"json": true, "text": true}
)

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
		LogFormat:      envOrDefault("LOG_FORMAT", "text"),
		MetricsAddr:    os.Getenv("METRICS_ADDR"),
		KafkaBrokers:   parseBrokers(os.Getenv("KAFKA_BROKERS")),
		KafkaSinkTopic: envOrDefault("KAFKA_SINK_TOPIC", "storm-ace-summaries"),
	}

	if !validLogLevels[cfg.LogLevel] {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	if !validLogFormats[cfg.LogFormat] {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaSinkTopic == "" {
		return nil, fmt.Errorf("KAFKA_SINK_TOPIC is required when KAFKA_BROKERS is set")
	}

	return cfg, nil
}

// PublishingConfigured reports whether a Kafka sink is available.
func (c *Config) PublishingConfigured() bool {
	return len(c.KafkaBrokers) > 0
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
