package spectra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestValidate(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	require.NoError(t, Validate(m, []float64{10, 20, 30}))
	require.ErrorIs(t, Validate(m, []float64{10, 20}), ErrLabelMismatch)
	require.NoError(t, Validate(&mat.Dense{}, nil))
	require.NoError(t, Validate(nil, nil))
	require.NoError(t, Validate(&mat.Dense{}, []float64{1, 2, 3}))
}

func TestCloneIsIndependent(t *testing.T) {
	m := mat.NewDense(1, 2, []float64{1, 2})
	c := Clone(m)
	c.Set(0, 0, 42)

	assert.Equal(t, 1.0, m.At(0, 0))
	assert.True(t, Clone(&mat.Dense{}).IsEmpty())
	assert.True(t, Clone(nil).IsEmpty())
}

func TestMeanRowIgnoresNaN(t *testing.T) {
	nan := math.NaN()
	m := mat.NewDense(2, 3, []float64{
		1, nan, nan,
		3, 4, nan,
	})

	got := MeanRow(m)
	require.Len(t, got, 3)
	assert.InDelta(t, 2.0, got[0], 1e-12)
	assert.InDelta(t, 4.0, got[1], 1e-12)
	assert.True(t, math.IsNaN(got[2]))

	assert.Nil(t, MeanRow(&mat.Dense{}))
}

func TestMidpoints(t *testing.T) {
	sorted := []float64{100, 110, 130, 160}
	assert.Equal(t, []float64{105, 145}, Midpoints(sorted, []int{0, 2}))
	assert.Empty(t, Midpoints(sorted, nil))
}
