package readiness_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hamready/backend/internal/domain/readiness"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := readiness.DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}

func TestValidate_WeightsMustSumTo100(t *testing.T) {
	cfg := readiness.DefaultConfig()
	cfg.Weights.Coverage = 20 // sum becomes 105

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for weights not summing to 100")
	}

	var cfgErr *readiness.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}

func TestValidate_NegativeWeight(t *testing.T) {
	cfg := readiness.DefaultConfig()
	cfg.Weights.RecentAccuracy = -5
	cfg.Weights.OverallAccuracy = 60 // keep the sum at 100

	if cfg.Validate() == nil {
		t.Fatal("expected error for negative weight")
	}
}

func TestValidate_ThresholdOrdering(t *testing.T) {
	cfg := readiness.DefaultConfig()
	cfg.CoverageBeta.LowThreshold = 0.7
	cfg.CoverageBeta.HighThreshold = 0.3

	if cfg.Validate() == nil {
		t.Fatal("expected error for low_threshold >= high_threshold")
	}
}

func TestValidate_ThresholdRange(t *testing.T) {
	cfg := readiness.DefaultConfig()
	cfg.CoverageBeta.HighThreshold = 1.5

	if cfg.Validate() == nil {
		t.Fatal("expected error for threshold outside [0, 1]")
	}
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := readiness.LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Version != "v1" {
		t.Errorf("expected default version v1, got %q", cfg.Version)
	}
}

func TestLoadConfig_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readiness.yaml")
	data := []byte(`version: v2-experiment
formula_weights:
  recent_accuracy: 40
  overall_accuracy: 20
  coverage: 10
  mastery: 15
  test_rate: 15
pass_probability:
  k: 0.2
  r0: 70
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := readiness.LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Version != "v2-experiment" {
		t.Errorf("expected version v2-experiment, got %q", cfg.Version)
	}
	if cfg.Weights.RecentAccuracy != 40 {
		t.Errorf("expected recent_accuracy weight 40, got %v", cfg.Weights.RecentAccuracy)
	}
	if cfg.PassProbability.R0 != 70 {
		t.Errorf("expected r0 70, got %v", cfg.PassProbability.R0)
	}

	// Fields absent from the file keep their defaults.
	if cfg.RecencyPenalty.MaxPenalty != 15 {
		t.Errorf("expected default max_penalty 15, got %v", cfg.RecencyPenalty.MaxPenalty)
	}
}

func TestLoadConfig_RejectsInvalidWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readiness.yaml")
	data := []byte(`version: broken
formula_weights:
  recent_accuracy: 90
  overall_accuracy: 90
  coverage: 0
  mastery: 0
  test_rate: 0
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := readiness.LoadConfig(path); err == nil {
		t.Fatal("expected validation error for weights summing to 180")
	}
}
