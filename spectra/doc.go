// Package spectra holds the sample-matrix data model shared by the chip
// transition packages.
//
// A sample matrix is a gonum [mat.Matrix] with one row per spectrum and one
// column per measured wavenumber. Column labels travel separately as a
// []float64 of wavenumbers and need not be sorted. Missing measurements are
// NaN. The zero [mat.Dense] stands for an empty matrix.
package spectra
