package spectra

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/stats/column"
)

// ErrLabelMismatch is returned when the number of wavenumber labels does not
// match the number of matrix columns.
var ErrLabelMismatch = errors.New("wavenumber count must match column count")

// Dims returns the matrix dimensions, treating nil and empty matrices as 0×0.
func Dims(m mat.Matrix) (rows, cols int) {
	if IsEmpty(m) {
		return 0, 0
	}

	return m.Dims()
}

// IsEmpty reports whether m holds no data.
func IsEmpty(m mat.Matrix) bool {
	if m == nil {
		return true
	}

	if d, ok := m.(*mat.Dense); ok {
		return d == nil || d.IsEmpty()
	}

	r, c := m.Dims()

	return r == 0 || c == 0
}

// Validate checks that wavenumbers label every column of m. An empty matrix
// has no samples to check and accepts any labels.
func Validate(m mat.Matrix, wavenumbers []float64) error {
	if IsEmpty(m) {
		return nil
	}

	_, cols := Dims(m)
	if cols != len(wavenumbers) {
		return fmt.Errorf("%w: %d labels for %d columns", ErrLabelMismatch, len(wavenumbers), cols)
	}

	return nil
}

// Clone returns a deep copy of m. An empty matrix clones to an empty Dense.
func Clone(m mat.Matrix) *mat.Dense {
	if IsEmpty(m) {
		return &mat.Dense{}
	}

	return mat.DenseCopyOf(m)
}

// MeanRow returns the per-column mean over all samples, ignoring NaN.
// A column without finite values yields NaN at its position.
func MeanRow(m mat.Matrix) []float64 {
	rows, cols := Dims(m)
	if cols == 0 {
		return nil
	}

	out := make([]float64, cols)
	buf := make([]float64, rows)

	for j := range out {
		mat.Col(buf, j, m)
		out[j] = column.Mean(buf)
	}

	return out
}

// Midpoint returns the wavenumber halfway between sorted columns b and b+1.
// This is the display position of a boundary.
func Midpoint(sorted []float64, b int) float64 {
	return (sorted[b] + sorted[b+1]) / 2
}

// Midpoints returns [Midpoint] for each boundary in bs.
func Midpoints(sorted []float64, bs []int) []float64 {
	out := make([]float64, len(bs))
	for i, b := range bs {
		out[i] = Midpoint(sorted, b)
	}

	return out
}
