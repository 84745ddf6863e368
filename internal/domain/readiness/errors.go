package readiness

import "fmt"

// ConfigError reports an invalid formula configuration. It is returned at
// config load time so a bad config can never reach a computation.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "readiness config: " + e.Reason
}

// InputError reports an attempt aggregate (or learner stat) outside its
// documented domain. The model rejects rather than clamps such values:
// silently clamping would mask data-quality bugs in the upstream
// aggregation and mislead the learner with a plausible-looking score.
type InputError struct {
	Subelement string // empty for learner-level inputs
	Field      string
	Value      float64
}

func (e *InputError) Error() string {
	if e.Subelement == "" {
		return fmt.Sprintf("readiness input: %s = %v out of range", e.Field, e.Value)
	}
	return fmt.Sprintf("readiness input: %s.%s = %v out of range", e.Subelement, e.Field, e.Value)
}
