package tda

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jrfloren/ripsgo"
	"github.com/jrfloren/ripsgo/embed"
	"github.com/jrfloren/ripsgo/metric"
	"github.com/jrfloren/ripsgo/rips"
)

// Config is the YAML form of the engine tunables, consumed by the CLI.
// Durations are strings in time.ParseDuration syntax ("30s", "2m").
type Config struct {
	Metric                 string          `yaml:"metric"`
	MaxScale               float64         `yaml:"max_scale"`
	MaxDimension           int             `yaml:"max_dimension"`
	IncludeZeroPersistence bool            `yaml:"include_zero_persistence"`
	Embedding              EmbeddingConfig `yaml:"embedding"`
	Limits                 LimitsConfig    `yaml:"limits"`
}

// EmbeddingConfig carries the delay-embedding parameters for series input.
type EmbeddingConfig struct {
	Dimension  int `yaml:"dimension"`
	Delay      int `yaml:"delay"`
	MaxSamples int `yaml:"max_samples"`
}

// LimitsConfig carries the resource budgets.
type LimitsConfig struct {
	MaxPoints    int    `yaml:"max_points"`
	MaxSimplices int    `yaml:"max_simplices"`
	MaxColumnOps int    `yaml:"max_column_ops"`
	TimeLimit    string `yaml:"time_limit"`
}

// DefaultConfig returns the same defaults DefaultOptions encodes, plus
// the conventional embedding (dimension 3, delay 10, 1000 samples).
func DefaultConfig() Config {
	return Config{
		Metric:       "euclidean",
		MaxScale:     0,
		MaxDimension: 1,
		Embedding: EmbeddingConfig{
			Dimension:  embed.DefaultDimension,
			Delay:      embed.DefaultDelay,
			MaxSamples: 1000,
		},
		Limits: LimitsConfig{
			MaxPoints:    rips.DefaultMaxPoints,
			MaxSimplices: rips.DefaultMaxSimplices,
		},
	}
}

// LoadConfig reads a YAML configuration file strictly (unknown keys are
// an error), overlaying the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("tda: %w: %v", ripsgo.ErrInvalidInput, err)
	}

	return cfg, nil
}

// Options resolves the config into runtime Options, validating the
// metric name and the duration syntax.
func (c Config) Options() (Options, error) {
	f, err := metric.ByName(c.Metric)
	if err != nil {
		return Options{}, err
	}
	var limit time.Duration
	if c.Limits.TimeLimit != "" {
		limit, err = time.ParseDuration(c.Limits.TimeLimit)
		if err != nil {
			return Options{}, fmt.Errorf("tda: %w: bad time_limit: %v", ripsgo.ErrInvalidInput, err)
		}
	}

	return Options{
		Metric:                 f,
		MaxScale:               c.MaxScale,
		MaxDimension:           c.MaxDimension,
		IncludeZeroPersistence: c.IncludeZeroPersistence,
		Limits: rips.Limits{
			MaxPoints:    c.Limits.MaxPoints,
			MaxSimplices: c.Limits.MaxSimplices,
		},
		MaxColumnOps: c.Limits.MaxColumnOps,
		TimeLimit:    limit,
	}, nil
}

// EmbedOptions resolves the embedding section.
func (c Config) EmbedOptions() embed.Options {
	return embed.Options{Dimension: c.Embedding.Dimension, Delay: c.Embedding.Delay}
}
