package detect

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultAlpha is the default smoothing threshold in standard deviations.
	DefaultAlpha = 3.0
	// DefaultBeta is the default spike threshold in standard deviations.
	DefaultBeta = 1.0
)

// ErrNegativeSensitivity is returned for negative or NaN sensitivity values.
var ErrNegativeSensitivity = errors.New("sensitivity must be a finite non-negative number")

// Config holds the detector sensitivity parameters.
type Config struct {
	// Alpha zeroes smoothed differences below Alpha*std. Larger is stricter.
	Alpha float64
	// Beta suppresses positions whose change from the previous smoothed
	// difference exceeds Beta*std.
	Beta float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns alpha=3, beta=1.
func DefaultConfig() Config {
	return Config{
		Alpha: DefaultAlpha,
		Beta:  DefaultBeta,
	}
}

// WithAlpha sets the smoothing threshold. Negative or NaN values are ignored.
func WithAlpha(alpha float64) Option {
	return func(cfg *Config) {
		if alpha >= 0 {
			cfg.Alpha = alpha
		}
	}
}

// WithBeta sets the spike threshold. Negative or NaN values are ignored.
func WithBeta(beta float64) Option {
	return func(cfg *Config) {
		if beta >= 0 {
			cfg.Beta = beta
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

// Validate reports whether both sensitivities are non-negative numbers.
func (c Config) Validate() error {
	if !(c.Alpha >= 0) || math.IsInf(c.Alpha, 0) {
		return fmt.Errorf("alpha %v: %w", c.Alpha, ErrNegativeSensitivity)
	}

	if !(c.Beta >= 0) || math.IsInf(c.Beta, 0) {
		return fmt.Errorf("beta %v: %w", c.Beta, ErrNegativeSensitivity)
	}

	return nil
}
