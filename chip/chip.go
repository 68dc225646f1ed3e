package chip

import (
	"slices"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/chip/boundary"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/chip/detect"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/chip/stitch"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/spectra"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/spectra/order"
)

// Detection is the outcome of one detection run.
type Detection struct {
	// Registry holds one Included slot per boundary.
	Registry *boundary.Registry
	// Boundaries are the ascending ordered-column gap indices.
	Boundaries []int
	// Midpoints are the display wavenumbers of Boundaries.
	Midpoints []float64
	// Std is the detector's standard deviation of smoothed differences.
	Std float64
}

type settings struct {
	log       zerolog.Logger
	listeners []boundary.Listener
}

// Option configures the entry points.
type Option func(*settings)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// WithListener attaches a selection listener to registries built by
// [DetectAndRegister].
func WithListener(fn boundary.Listener) Option {
	return func(s *settings) {
		if fn != nil {
			s.listeners = append(s.listeners, fn)
		}
	}
}

func applyOptions(opts []Option) settings {
	s := settings{log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}

// DetectAndRegister finds chip transitions in m and returns a registry with
// one Included boundary per transition.
//
// wavenumbers labels the columns of m and may be in any order. alpha and
// beta must be non-negative. An empty matrix, with or without labels, or
// one with fewer than four columns yields an empty registry.
func DetectAndRegister(m mat.Matrix, wavenumbers []float64, alpha, beta float64, opts ...Option) (*Detection, error) {
	s := applyOptions(opts)

	if err := spectra.Validate(m, wavenumbers); err != nil {
		return nil, err
	}

	cfg := detect.Config{Alpha: alpha, Beta: beta}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	regOpts := []boundary.Option{boundary.WithLogger(s.log)}
	for _, fn := range s.listeners {
		regOpts = append(regOpts, boundary.WithListener(fn))
	}

	res := detect.Result{Boundaries: []int{}}
	mids := []float64{}
	if !spectra.IsEmpty(m) {
		perm := order.Compute(wavenumbers)
		res = detect.New(detect.WithAlpha(alpha), detect.WithBeta(beta)).Detect(perm.Apply(m))
		mids = spectra.Midpoints(perm.Sorted(wavenumbers), res.Boundaries)
	}

	reg, err := boundary.NewRegistry(res.Boundaries, mids, regOpts...)
	if err != nil {
		return nil, err
	}

	rows, cols := spectra.Dims(m)
	s.log.Debug().
		Int("samples", rows).
		Int("columns", cols).
		Float64("alpha", alpha).
		Float64("beta", beta).
		Float64("std", res.Std).
		Ints("boundaries", res.Boundaries).
		Msg("chip transitions detected")

	return &Detection{
		Registry:   reg,
		Boundaries: res.Boundaries,
		Midpoints:  mids,
		Std:        res.Std,
	}, nil
}

// ApplyCorrection stitches m across the boundaries currently included in
// reg. It is [ApplySelection] with a snapshot of reg's selection taken at
// call time.
func ApplyCorrection(m mat.Matrix, wavenumbers []float64, reg *boundary.Registry, opts ...Option) (*mat.Dense, error) {
	return ApplySelection(m, wavenumbers, reg.Selected(), opts...)
}

// ApplySelection stitches m across the given ordered-column gap indices and
// returns a new matrix with the same shape and column layout as m. The
// selection is copied before use.
//
// An empty matrix or an empty selection returns an unchanged copy. Zero or
// NaN pivot values produce non-finite cells, which are logged as a warning
// but do not stop the correction.
func ApplySelection(m mat.Matrix, wavenumbers []float64, selected []int, opts ...Option) (*mat.Dense, error) {
	s := applyOptions(opts)

	if err := spectra.Validate(m, wavenumbers); err != nil {
		return nil, err
	}

	if len(selected) == 0 || spectra.IsEmpty(m) {
		return spectra.Clone(m), nil
	}

	selected = slices.Clone(selected)

	perm := order.Compute(wavenumbers)
	corrected := stitch.Correct(perm.Apply(m), selected)
	out := perm.Restore(corrected)

	if n := stitch.NonFinite(out) - stitch.NonFinite(m); n > 0 {
		s.log.Warn().
			Int("cells", n).
			Ints("boundaries", selected).
			Msg("correction produced non-finite values; check for zero or missing pivot columns")
	}

	return out, nil
}
