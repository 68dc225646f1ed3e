package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSkipsNaN(t *testing.T) {
	s := Calculate([]float64{1, math.NaN(), 3, 5})

	require.Equal(t, 3, s.Count)
	require.Equal(t, 1, s.Missing)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, 8.0/3.0, s.Variance, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
}

func TestCalculateAllMissing(t *testing.T) {
	s := Calculate([]float64{math.NaN(), math.NaN()})

	require.Equal(t, 0, s.Count)
	require.Equal(t, 2, s.Missing)
	assert.True(t, math.IsNaN(s.Mean))
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	assert.Equal(t, 0, s.Count)
	assert.True(t, math.IsNaN(s.Mean))
}

func TestMean(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"plain", []float64{2, 4, 6}, 4},
		{"with missing", []float64{math.NaN(), 4, 6}, 5},
		{"single", []float64{7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Mean(tt.in), 1e-12)
		})
	}

	assert.True(t, math.IsNaN(Mean([]float64{math.NaN()})))
	assert.True(t, math.IsNaN(Mean(nil)))
}

func TestPopStdDev(t *testing.T) {
	// Population form: divide by n, not n-1.
	assert.InDelta(t, 2.0, PopStdDev([]float64{0, 4, 4, 0}), 1e-12)
	assert.InDelta(t, 2.0, PopStdDev([]float64{0, 4, math.NaN(), 4, 0}), 1e-12)
	assert.Equal(t, 0.0, PopStdDev([]float64{math.NaN()}))
	assert.Equal(t, 0.0, PopStdDev(nil))
}

func TestFiniteDoesNotAlias(t *testing.T) {
	in := []float64{1, 2, 3}
	out := Finite(in)
	out[0] = 99
	assert.Equal(t, 1.0, in[0])
}

func TestStreamingMatchesCalculate(t *testing.T) {
	values := []float64{3, math.NaN(), -1, 8, 2.5, math.NaN(), 4}

	s := NewStreamingStats()
	s.Update(values[:3])
	s.Update(values[3:])

	got := s.Result()
	want := Calculate(values)

	assert.Equal(t, want.Count, got.Count)
	assert.Equal(t, want.Missing, got.Missing)
	assert.InDelta(t, want.Mean, got.Mean, 1e-12)
	assert.InDelta(t, want.Variance, got.Variance, 1e-12)
	assert.Equal(t, want.Min, got.Min)
	assert.Equal(t, want.Max, got.Max)
}
