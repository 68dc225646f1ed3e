// Package testutil provides deterministic spectral fixtures and tolerance
// helpers for tests.
package testutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Steps builds one spectrum of constant segments: widths[i] columns at
// levels[i]. Panics if the slices differ in length.
func Steps(levels []float64, widths []int) []float64 {
	if len(levels) != len(widths) {
		panic("testutil: levels and widths must have equal length")
	}

	var out []float64
	for i, w := range widths {
		for range w {
			out = append(out, levels[i])
		}
	}

	return out
}

// Wavenumbers returns n evenly spaced ascending labels starting at start.
func Wavenumbers(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// Rows stacks identical copies of row into a rows×len(row) matrix.
func Rows(row []float64, rows int) *mat.Dense {
	data := make([]float64, 0, rows*len(row))
	for range rows {
		data = append(data, row...)
	}

	return mat.NewDense(rows, len(row), data)
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// ChipMatrix builds a rows×sum(widths) matrix of multi-chip spectra.
//
// Each row follows a smooth band profile multiplied by a per-chip gain, so
// every chip boundary shows a multiplicative step. A per-row scale and
// deterministic noise make the samples differ.
func ChipMatrix(rows int, widths []int, gains []float64, noise float64, seed int64) *mat.Dense {
	if len(widths) != len(gains) {
		panic("testutil: widths and gains must have equal length")
	}

	cols := 0
	for _, w := range widths {
		cols += w
	}

	out := mat.NewDense(rows, cols, nil)
	for r := range rows {
		jitter := DeterministicNoise(seed+int64(r), noise, cols)
		scale := 1 + 0.1*float64(r)

		j := 0
		for chip, w := range widths {
			for range w {
				x := float64(j) / float64(cols)
				band := 10 + 2*math.Sin(2*math.Pi*x)
				out.Set(r, j, scale*gains[chip]*band+jitter[j])
				j++
			}
		}
	}

	return out
}

// Permutation returns a deterministic pseudo-random permutation of [0, n).
func Permutation(seed int64, n int) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}

// PermuteColumns returns out[:, i] = m[:, perm[i]] and the matching labels.
func PermuteColumns(m *mat.Dense, labels []float64, perm []int) (*mat.Dense, []float64) {
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	outLabels := make([]float64, cols)
	buf := make([]float64, rows)

	for i, j := range perm {
		mat.Col(buf, j, m)
		out.SetCol(i, buf)
		outLabels[i] = labels[j]
	}

	return out, outLabels
}

// DC returns a constant-valued slice of length n.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}
