package core

// EvalConfig defines the grid a response is evaluated on.
type EvalConfig struct {
	FMin    float64 // lowest frequency in Hz
	FMax    float64 // highest frequency in Hz
	Points  int     // frequency grid size
	Samples int     // time grid size for step responses
}

// EvalOption mutates an EvalConfig.
type EvalOption func(*EvalConfig)

// DefaultEvalConfig returns the 20–300 Hz, 100 point grid used for
// frequency responses and 200 samples for step responses.
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{
		FMin:    20,
		FMax:    300,
		Points:  100,
		Samples: 200,
	}
}

// WithRange sets the evaluated frequency range.
func WithRange(fmin, fmax float64) EvalOption {
	return func(cfg *EvalConfig) {
		cfg.FMin = fmin
		cfg.FMax = fmax
	}
}

// WithPoints sets the number of frequency points.
func WithPoints(n int) EvalOption {
	return func(cfg *EvalConfig) {
		cfg.Points = n
	}
}

// WithSamples sets the number of step-response samples.
func WithSamples(n int) EvalOption {
	return func(cfg *EvalConfig) {
		cfg.Samples = n
	}
}

// ApplyEvalOptions applies zero or more options on top of base.
func ApplyEvalOptions(base EvalConfig, opts ...EvalOption) EvalConfig {
	cfg := base
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// ValidateRange checks a frequency grid configuration.
func (c EvalConfig) ValidateRange(op string) error {
	switch {
	case !IsFinite(c.FMin) || c.FMin <= 0:
		return NewValidationError(op, "fmin", c.FMin, "must be positive")
	case !IsFinite(c.FMax) || c.FMax <= c.FMin:
		return NewValidationError(op, "fmax", c.FMax, "must exceed fmin")
	case c.Points < 2:
		return NewValidationError(op, "points", float64(c.Points), "must be at least 2")
	}

	return nil
}

// ValidateSamples checks the step-response sample count.
func (c EvalConfig) ValidateSamples(op string) error {
	if c.Samples < 2 {
		return NewValidationError(op, "samples", float64(c.Samples), "must be at least 2")
	}

	return nil
}
