// Package order derives the ascending-wavenumber column permutation of a
// sample matrix and its inverse.
//
// Input columns need not arrive sorted. Detection and stitching work on the
// ordered view; results are mapped back with [Permutation.Restore] so callers
// always receive their original column layout.
package order

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/spectra"
)

// Permutation pairs the ascending column order with its inverse.
//
// Order[i] is the original column placed at ordered position i, and
// Reverse[j] is the ordered position of original column j, so that
// ordered[:, Reverse] == original.
type Permutation struct {
	Order   []int
	Reverse []int
}

// Compute returns the stable ascending permutation of wavenumbers. Equal
// wavenumbers keep their original relative order.
func Compute(wavenumbers []float64) Permutation {
	n := len(wavenumbers)
	p := Permutation{
		Order:   make([]int, n),
		Reverse: make([]int, n),
	}

	if n == 0 {
		return p
	}

	keys := make([]float64, n)
	copy(keys, wavenumbers)
	floats.ArgsortStable(keys, p.Order)

	for i, j := range p.Order {
		p.Reverse[j] = i
	}

	return p
}

// Len returns the number of columns covered by the permutation.
func (p Permutation) Len() int { return len(p.Order) }

// Sorted returns wavenumbers in ascending order.
func (p Permutation) Sorted(wavenumbers []float64) []float64 {
	return gather(wavenumbers, p.Order)
}

// Apply returns a copy of m with columns permuted into ascending order.
func (p Permutation) Apply(m mat.Matrix) *mat.Dense {
	return permuteColumns(m, p.Order)
}

// Restore returns a copy of the ordered matrix m with columns moved back to
// their original positions.
func (p Permutation) Restore(m mat.Matrix) *mat.Dense {
	return permuteColumns(m, p.Reverse)
}

func gather(src []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = src[j]
	}

	return out
}

// permuteColumns builds out[:, i] = m[:, idx[i]].
func permuteColumns(m mat.Matrix, idx []int) *mat.Dense {
	rows, cols := spectra.Dims(m)
	if rows == 0 || cols == 0 {
		return &mat.Dense{}
	}

	if len(idx) != cols {
		panic("order: permutation length does not match column count")
	}

	out := mat.NewDense(rows, cols, nil)
	buf := make([]float64, rows)

	for i, j := range idx {
		mat.Col(buf, j, m)
		out.SetCol(i, buf)
	}

	return out
}
