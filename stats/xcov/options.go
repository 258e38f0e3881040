package xcov

import "runtime"

// Config controls MultiWithConfidence.
type Config struct {
	// Confidence is the level of the reported interval, in (0, 1).
	Confidence float64
	// Normed divides covariances and bounds by sqrt(var(xs) * var(ys)).
	Normed bool
	// Workers bounds how many lags are evaluated concurrently.
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a 95% interval, raw covariances and one worker per
// available CPU.
func DefaultConfig() Config {
	return Config{
		Confidence: 0.95,
		Normed:     false,
		Workers:    runtime.GOMAXPROCS(0),
	}
}

// WithConfidence sets the confidence level. Values outside (0, 1) are
// rejected by MultiWithConfidence with ErrInvalidConfidence.
// Unlike the other options it stores invalid values instead of ignoring
// them, since silently keeping the default would change the reported bounds.
func WithConfidence(level float64) Option {
	return func(cfg *Config) {
		cfg.Confidence = level
	}
}

// WithNormed enables normalisation by the geometric mean of the input and
// output variances.
func WithNormed(normed bool) Option {
	return func(cfg *Config) {
		cfg.Normed = normed
	}
}

// WithWorkers sets the number of lags evaluated concurrently.
// 1 evaluates lags sequentially; non-positive values are ignored.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
