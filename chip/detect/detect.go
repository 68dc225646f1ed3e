package detect

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/spectra"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/stats/column"
)

// MinColumns is the smallest column count for which a boundary can exist.
const MinColumns = 4

// Result holds the detected boundaries and the intermediate values that
// produced them.
type Result struct {
	// Boundaries are ascending ordered-column gap indices, each in
	// [1, N-4] for N columns.
	Boundaries []int
	// Std is the population standard deviation of the smoothed differences.
	Std float64
	// Score holds the smoothed differences that survived both thresholds,
	// one per gap index; it is zero wherever no boundary was found.
	Score []float64
}

// Detector runs transition detection with a fixed configuration.
type Detector struct {
	cfg Config
}

// New creates a Detector. Invalid options are ignored.
func New(opts ...Option) *Detector {
	return &Detector{cfg: ApplyOptions(opts...)}
}

// Config returns the detector configuration.
func (d *Detector) Config() Config { return d.cfg }

// Detect runs detection over an ordered sample matrix.
func (d *Detector) Detect(ordered mat.Matrix) Result {
	return Analyze(spectra.MeanRow(ordered), d.cfg.Alpha, d.cfg.Beta)
}

// Transitions is a one-shot detection returning only the boundary indices.
// Columns of ordered must be ascending by wavenumber.
func Transitions(ordered mat.Matrix, alpha, beta float64) []int {
	return Analyze(spectra.MeanRow(ordered), alpha, beta).Boundaries
}

// Analyze runs detection over a precomputed column-mean spectrum.
//
// Fewer than [MinColumns] values yield an empty result. NaN means propagate
// into the smoothed differences but never compare above a threshold, so they
// are never reported as boundaries.
func Analyze(meanRow []float64, alpha, beta float64) Result {
	n := len(meanRow)
	if n < MinColumns {
		return Result{Boundaries: []int{}}
	}

	// Two-tap sum of adjacent first differences:
	// (m[k+1]-m[k]) + (m[k+2]-m[k+1]).
	sum := make([]float64, n-2)
	for k := range sum {
		d0 := meanRow[k+1] - meanRow[k]
		d1 := meanRow[k+2] - meanRow[k+1]
		sum[k] = math.Abs(d0 + d1)
	}

	last := len(sum) - 1
	sum[0] = 0
	sum[last] = 0

	std := column.PopStdDev(sum)

	lower := alpha * std
	for k, v := range sum {
		if v < lower {
			sum[k] = 0
		}
	}

	// The spike mask is derived from the thresholded values before any
	// of them are zeroed by it.
	spike := beta * std
	mask := make([]bool, len(sum))
	mask[0] = true
	for k := 0; k < last; k++ {
		mask[k+1] = math.Abs(sum[k+1]-sum[k]) > spike
	}

	for k, masked := range mask {
		if masked {
			sum[k] = 0
		}
	}

	res := Result{
		Boundaries: []int{},
		Std:        std,
		Score:      sum,
	}

	for k, v := range sum {
		if v > 0 {
			res.Boundaries = append(res.Boundaries, k)
		}
	}

	return res
}
