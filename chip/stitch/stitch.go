// Package stitch rescales spectra so that intensities line up across chip
// transitions.
//
// For each included boundary b, taken in ascending order, every column up to
// and including b is multiplied by row[b+1]/row[b] of the running, already
// corrected row. The ratios therefore compound: after the last boundary the
// whole row sits on the scale of the rightmost chip segment. Processing order
// is part of the result and must stay ascending.
//
// Division by a zero or NaN pivot yields Inf or NaN in the scaled prefix of
// that row only. Other rows are unaffected.
package stitch

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/spectra"
)

// Correct returns a stitched copy of an ordered sample matrix.
//
// The boundary list is copied and sorted before use, so callers may keep
// mutating their own slice. Boundaries without a right neighbour column are
// skipped. An empty list returns an unchanged copy.
func Correct(ordered mat.Matrix, boundaries []int) *mat.Dense {
	out := spectra.Clone(ordered)
	rows, cols := spectra.Dims(out)
	if rows == 0 || len(boundaries) == 0 {
		return out
	}

	bs := slices.Clone(boundaries)
	slices.Sort(bs)
	bs = slices.DeleteFunc(bs, func(b int) bool {
		return b < 0 || b+1 >= cols
	})

	for i := range rows {
		Row(out.RawRowView(i), bs)
	}

	return out
}

// Row stitches a single row in place using ascending boundaries.
func Row(row []float64, ascending []int) {
	for _, b := range ascending {
		ratio := row[b+1] / row[b]
		prefix := row[:b+1]
		vecmath.ScaleBlock(prefix, prefix, ratio)
	}
}

// NonFinite counts NaN and Inf cells in m.
func NonFinite(m mat.Matrix) int {
	rows, cols := spectra.Dims(m)

	var n int
	for i := range rows {
		for j := range cols {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				n++
			}
		}
	}

	return n
}
