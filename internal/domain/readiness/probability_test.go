package readiness_test

import (
	"math"
	"testing"

	"github.com/hamready/backend/internal/domain/readiness"
)

func TestPassProbability_MidpointIsHalf(t *testing.T) {
	p := readiness.PassProbabilityParams{K: 0.15, R0: 65}

	if got := readiness.PassProbability(65, p); got != 0.5 {
		t.Errorf("expected exactly 0.5 at r0, got %v", got)
	}
}

func TestPassProbability_CalibratedPoint(t *testing.T) {
	p := readiness.PassProbabilityParams{K: 0.15, R0: 65}

	got := readiness.PassProbability(61, p)
	if math.Abs(got-0.3543) > 1e-4 {
		t.Errorf("expected ≈0.3543 at score 61, got %v", got)
	}
}

func TestPassProbability_StrictlyIncreasing(t *testing.T) {
	p := readiness.PassProbabilityParams{K: 0.15, R0: 65}

	prev := math.Inf(-1)
	for score := -50.0; score <= 150; score += 5 {
		got := readiness.PassProbability(score, p)
		if got <= prev {
			t.Fatalf("probability not strictly increasing at score %v: %v <= %v", score, got, prev)
		}
		prev = got
	}
}

func TestPassProbability_BoundedOpenInterval(t *testing.T) {
	p := readiness.PassProbabilityParams{K: 0.15, R0: 65}

	for _, score := range []float64{-1000, -100, 0, 100, 1000} {
		got := readiness.PassProbability(score, p)
		if got <= 0 || got >= 1 {
			t.Errorf("probability %v at score %v outside (0, 1)", got, score)
		}
	}
}
