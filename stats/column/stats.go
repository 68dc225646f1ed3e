// Package column computes NaN-aware statistics over single columns of a
// spectral sample matrix.
//
// Missing measurements are encoded as NaN and are skipped rather than
// propagated, so a column mean reflects only the samples that were actually
// measured. A column with no finite values yields a NaN mean.
package column

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Stats holds statistics of one matrix column.
type Stats struct {
	Count    int // finite values
	Missing  int // NaN values
	Mean     float64
	Variance float64 // population variance
	Min      float64
	Max      float64
}

// emptyStats returns the statistics of a column without finite values.
func emptyStats(missing int) Stats {
	return Stats{
		Missing:  missing,
		Mean:     math.NaN(),
		Variance: math.NaN(),
		Min:      math.NaN(),
		Max:      math.NaN(),
	}
}

// Calculate computes all column statistics in a single pass using
// Welford's online algorithm. NaN values are counted as missing and skipped.
func Calculate(values []float64) Stats {
	var (
		n       int
		missing int
		mean    float64
		m2      float64
		minVal  = math.Inf(1)
		maxVal  = math.Inf(-1)
	)

	for _, x := range values {
		if math.IsNaN(x) {
			missing++
			continue
		}

		n++
		delta := x - mean
		mean += delta / float64(n)
		m2 += delta * (x - mean)

		if x < minVal {
			minVal = x
		}

		if x > maxVal {
			maxVal = x
		}
	}

	if n == 0 {
		return emptyStats(missing)
	}

	return Stats{
		Count:    n,
		Missing:  missing,
		Mean:     mean,
		Variance: m2 / float64(n),
		Min:      minVal,
		Max:      maxVal,
	}
}

// Mean returns the mean of the finite values, or NaN if there are none.
func Mean(values []float64) float64 {
	var (
		n    int
		mean float64
	)

	for _, x := range values {
		if math.IsNaN(x) {
			continue
		}

		n++
		mean += (x - mean) / float64(n)
	}

	if n == 0 {
		return math.NaN()
	}

	return mean
}

// Finite returns the NaN-free values of x in their original order.
// The returned slice never aliases x.
func Finite(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}

	return out
}

// PopStdDev returns the population standard deviation of the finite values.
// Returns 0 when there are no finite values.
func PopStdDev(values []float64) float64 {
	finite := Finite(values)
	if len(finite) == 0 {
		return 0
	}

	return stat.PopStdDev(finite, nil)
}

// StreamingStats accumulates column statistics across multiple blocks. It
// processes each value individually to give identical results to
// [Calculate] over the concatenated input.
type StreamingStats struct {
	n       int
	missing int
	mean    float64
	m2      float64
	minVal  float64
	maxVal  float64
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{minVal: math.Inf(1), maxVal: math.Inf(-1)}
}

// Update adds a block of values to the running statistics.
func (s *StreamingStats) Update(values []float64) {
	for _, x := range values {
		if math.IsNaN(x) {
			s.missing++
			continue
		}

		s.n++
		delta := x - s.mean
		s.mean += delta / float64(s.n)
		s.m2 += delta * (x - s.mean)

		if x < s.minVal {
			s.minVal = x
		}

		if x > s.maxVal {
			s.maxVal = x
		}
	}
}

// Result computes the final statistics from accumulated data.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return emptyStats(s.missing)
	}

	return Stats{
		Count:    s.n,
		Missing:  s.missing,
		Mean:     s.mean,
		Variance: s.m2 / float64(s.n),
		Min:      s.minVal,
		Max:      s.maxVal,
	}
}
