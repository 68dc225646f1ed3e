package table

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var tab = Format{Delimiter: '\t', Missing: "?"}

func TestReadSplitsSpectralAndMeta(t *testing.T) {
	in := "sample\t1000\t1002.5\tgroup\t1005\n" +
		"a\t1\t2\tx\t3\n" +
		"b\t4\t?\ty\t6\n"

	tb, err := Read(strings.NewReader(in), tab)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 4}, tb.Spectral)
	assert.Equal(t, []float64{1000, 1002.5, 1005}, tb.Wavenumbers)
	assert.Equal(t, [][]string{{"a", "x"}, {"b", "y"}}, tb.Meta)
	assert.Equal(t, 2, tb.Samples())

	r, c := tb.X.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	assert.Equal(t, 6.0, tb.X.At(1, 2))
	assert.True(t, math.IsNaN(tb.X.At(1, 1)))
}

func TestRoundTrip(t *testing.T) {
	in := "id,900,800,700\n" +
		"s1,1.5,?,3\n" +
		"s2,4,5,6e-07\n"
	csvFmt := Format{Delimiter: ',', Missing: "?"}

	tb, err := Read(strings.NewReader(in), csvFmt)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Write(&out, tb, csvFmt))
	assert.Equal(t, in, out.String())
}

func TestWithXReplacesValues(t *testing.T) {
	tb, err := Read(strings.NewReader("1\t2\n3\t4\n"), tab)
	require.NoError(t, err)

	cp := tb.WithX(mat.NewDense(1, 2, []float64{9, math.NaN()}))

	var out bytes.Buffer
	require.NoError(t, Write(&out, cp, tab))
	assert.Equal(t, "1\t2\n9\t?\n", out.String())
	assert.Equal(t, 3.0, tb.X.At(0, 0))
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader(""), tab)
	require.ErrorIs(t, err, ErrNoHeader)

	tb, err := Read(strings.NewReader("name\tgroup\n"), tab)
	require.NoError(t, err)
	assert.True(t, tb.X.IsEmpty())
	assert.Empty(t, tb.Wavenumbers)
}

func TestReadBadValue(t *testing.T) {
	_, err := Read(strings.NewReader("1\t2\n3\toops\n"), tab)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), `"2"`)
}

func TestReadRaggedRecord(t *testing.T) {
	_, err := Read(strings.NewReader("1\t2\n3\n"), tab)
	require.Error(t, err)
}

func TestReadSkipsComments(t *testing.T) {
	tb, err := Read(strings.NewReader("# exported\n1\t2\n3\tnan\n"), tab)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(tb.X.At(0, 1)))
}

func TestStatsCountsMissingCells(t *testing.T) {
	in := "sample\t1000\t1002.5\tgroup\t1005\n" +
		"a\t1\t2\tx\t3\n" +
		"b\t4\t?\ty\t6\n"

	tb, err := Read(strings.NewReader(in), tab)
	require.NoError(t, err)

	st := tb.Stats()
	assert.Equal(t, 5, st.Count)
	assert.Equal(t, 1, st.Missing)
	assert.InDelta(t, 3.2, st.Mean, 1e-12)
	assert.Equal(t, 1.0, st.Min)
	assert.Equal(t, 6.0, st.Max)
}

func TestStatsHeaderOnly(t *testing.T) {
	tb, err := Read(strings.NewReader("sample\t1000\t1005\n"), tab)
	require.NoError(t, err)

	st := tb.Stats()
	assert.Equal(t, 0, st.Count)
	assert.True(t, math.IsNaN(st.Mean))
}
