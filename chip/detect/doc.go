// Package detect locates chip transitions in an ordered spectral sample
// matrix.
//
// A multi-chip spectrometer measures adjacent wavenumber ranges on separate
// detector chips. Where one range ends and the next begins the mean spectrum
// usually shows a step. The detector smooths the first difference of the
// column-mean spectrum with a two-tap sum, discards values below Alpha
// standard deviations, and suppresses isolated spikes whose change relative
// to their neighbour exceeds Beta standard deviations.
//
// Boundary indices are expressed in ordered-column space: boundary b is the
// gap between ordered columns b and b+1. Indices never touch the outer edges
// of the matrix.
package detect
