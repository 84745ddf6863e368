package readiness

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// FormulaWeights are the relative weights of the five readiness signals.
// They must sum to 100 so the composite score lands on a 0-100 scale.
type FormulaWeights struct {
	RecentAccuracy  float64 `yaml:"recent_accuracy" json:"recent_accuracy"`
	OverallAccuracy float64 `yaml:"overall_accuracy" json:"overall_accuracy"`
	Coverage        float64 `yaml:"coverage" json:"coverage"`
	Mastery         float64 `yaml:"mastery" json:"mastery"`
	TestRate        float64 `yaml:"test_rate" json:"test_rate"`
}

// PassProbabilityParams parameterize the logistic score-to-probability map.
// R0 is the score that maps to exactly 50%, K the curve steepness.
type PassProbabilityParams struct {
	K  float64 `yaml:"k" json:"k"`
	R0 float64 `yaml:"r0" json:"r0"`
}

// RecencyPenaltyParams control the score deduction for not studying.
type RecencyPenaltyParams struct {
	MaxPenalty float64 `yaml:"max_penalty" json:"max_penalty"`
	DecayRate  float64 `yaml:"decay_rate" json:"decay_rate"`
}

// CoverageBetaParams define the risk multiplier bands by topic coverage.
// Below LowThreshold risk is amplified by Low; at or above HighThreshold
// it is dampened by High; Mid applies in between.
type CoverageBetaParams struct {
	Low           float64 `yaml:"low" json:"low"`
	Mid           float64 `yaml:"mid" json:"mid"`
	High          float64 `yaml:"high" json:"high"`
	LowThreshold  float64 `yaml:"low_threshold" json:"low_threshold"`
	HighThreshold float64 `yaml:"high_threshold" json:"high_threshold"`
}

// Config holds every formula parameter of the scoring model. It is an
// immutable value passed explicitly into each computation; the Version
// string travels with every snapshot for reproducibility.
type Config struct {
	Version         string                `yaml:"version" json:"version"`
	Weights         FormulaWeights        `yaml:"formula_weights" json:"formula_weights"`
	PassProbability PassProbabilityParams `yaml:"pass_probability" json:"pass_probability"`
	RecencyPenalty  RecencyPenaltyParams  `yaml:"recency_penalty" json:"recency_penalty"`
	CoverageBeta    CoverageBetaParams    `yaml:"coverage_beta" json:"coverage_beta"`
}

const weightTotal = 100.0

// DefaultConfig returns the calibrated v1 parameters.
func DefaultConfig() Config {
	return Config{
		Version: "v1",
		Weights: FormulaWeights{
			RecentAccuracy:  35,
			OverallAccuracy: 20,
			Coverage:        15,
			Mastery:         15,
			TestRate:        15,
		},
		PassProbability: PassProbabilityParams{K: 0.15, R0: 65},
		RecencyPenalty:  RecencyPenaltyParams{MaxPenalty: 15, DecayRate: 0.5},
		CoverageBeta: CoverageBetaParams{
			Low:           1.2,
			Mid:           1.0,
			High:          0.9,
			LowThreshold:  0.3,
			HighThreshold: 0.7,
		},
	}
}

// Validate checks the structural invariants of a config. It is meant to run
// once when a config is loaded or activated, not on every computation.
func (c Config) Validate() error {
	w := c.Weights
	for _, v := range []float64{w.RecentAccuracy, w.OverallAccuracy, w.Coverage, w.Mastery, w.TestRate} {
		if v < 0 {
			return &ConfigError{Reason: fmt.Sprintf("formula weights must be non-negative, got %v", v)}
		}
	}
	sum := w.RecentAccuracy + w.OverallAccuracy + w.Coverage + w.Mastery + w.TestRate
	if math.Abs(sum-weightTotal) > 1e-9 {
		return &ConfigError{Reason: fmt.Sprintf("formula weights must sum to %v, got %v", weightTotal, sum)}
	}
	b := c.CoverageBeta
	if b.LowThreshold < 0 || b.LowThreshold > 1 || b.HighThreshold < 0 || b.HighThreshold > 1 {
		return &ConfigError{Reason: "coverage thresholds must be within [0, 1]"}
	}
	if b.LowThreshold >= b.HighThreshold {
		return &ConfigError{Reason: fmt.Sprintf("coverage low_threshold %v must be below high_threshold %v", b.LowThreshold, b.HighThreshold)}
	}
	return nil
}

// LoadConfig reads and validates a YAML config file. An empty path means
// "use the built-in defaults".
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read readiness config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse readiness config: %w", err)
	}
	if cfg.Version == "" {
		return Config{}, &ConfigError{Reason: "version is required"}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
