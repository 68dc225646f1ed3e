// Package table reads and writes delimited sample tables.
//
// The first record is a header. Header fields that parse as numbers are
// wavenumber labels of spectral columns; every other column is metadata and
// is carried through untouched. Each following record is one sample.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/stats/column"
)

// ErrNoHeader is returned for input without a header record.
var ErrNoHeader = errors.New("table has no header")

// Format controls the delimiter and missing-value token.
type Format struct {
	Delimiter rune
	Missing   string
}

// Table is a decoded sample table.
type Table struct {
	// Header holds every column name in file order.
	Header []string
	// Spectral lists the file positions of the spectral columns.
	Spectral []int
	// Wavenumbers labels the spectral columns, same order as Spectral.
	Wavenumbers []float64
	// X holds the spectral values, one row per sample. Empty if there are
	// no samples or no spectral columns.
	X *mat.Dense
	// Meta holds the non-spectral fields of every row, in file order.
	Meta [][]string
}

// Samples returns the number of rows.
func (t *Table) Samples() int { return len(t.Meta) }

// Stats summarises all spectral cells. Missing counts the NaN cells.
func (t *Table) Stats() column.Stats {
	s := column.NewStreamingStats()
	if t.X != nil && !t.X.IsEmpty() {
		rows, _ := t.X.Dims()
		for i := range rows {
			s.Update(t.X.RawRowView(i))
		}
	}

	return s.Result()
}

// WithX returns a shallow copy of t carrying different spectral values.
func (t *Table) WithX(x *mat.Dense) *Table {
	cp := *t
	cp.X = x

	return &cp
}

// Read decodes a table from r.
func Read(r io.Reader, f Format) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = f.Delimiter
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	t := &Table{Header: header}
	for i, name := range header {
		wn, err := strconv.ParseFloat(strings.TrimSpace(name), 64)
		if err != nil || math.IsNaN(wn) || math.IsInf(wn, 0) {
			continue
		}
		t.Spectral = append(t.Spectral, i)
		t.Wavenumbers = append(t.Wavenumbers, wn)
	}

	isSpectral := make([]bool, len(header))
	for _, i := range t.Spectral {
		isSpectral[i] = true
	}

	var data []float64
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		meta := make([]string, 0, len(header)-len(t.Spectral))
		for i, field := range rec {
			if !isSpectral[i] {
				meta = append(meta, field)
				continue
			}

			v, err := parseValue(field, f.Missing)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, header[i], err)
			}
			data = append(data, v)
		}
		t.Meta = append(t.Meta, meta)
	}

	t.X = &mat.Dense{}
	if len(t.Meta) > 0 && len(t.Spectral) > 0 {
		t.X = mat.NewDense(len(t.Meta), len(t.Spectral), data)
	}

	return t, nil
}

// Write encodes t to w. NaN cells are written as f.Missing.
func Write(w io.Writer, t *Table, f Format) error {
	cw := csv.NewWriter(w)
	cw.Comma = f.Delimiter

	if err := cw.Write(t.Header); err != nil {
		return err
	}

	isSpectral := make([]bool, len(t.Header))
	for _, i := range t.Spectral {
		isSpectral[i] = true
	}

	rec := make([]string, len(t.Header))
	for r, meta := range t.Meta {
		m, s := 0, 0
		for i := range rec {
			if isSpectral[i] {
				rec[i] = formatValue(t.X.At(r, s), f.Missing)
				s++
				continue
			}
			rec[i] = meta[m]
			m++
		}

		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func parseValue(field, missing string) (float64, error) {
	s := strings.TrimSpace(field)
	if s == "" || s == missing || s == "?" || strings.EqualFold(s, "nan") {
		return math.NaN(), nil
	}

	return strconv.ParseFloat(s, 64)
}

func formatValue(v float64, missing string) string {
	if math.IsNaN(v) {
		return missing
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
