// Package chip detects and corrects chip transitions in multi-segment
// spectrometer data.
//
// A host supplies a sample matrix (rows are spectra, columns are measured
// wavenumbers in any order) plus the wavenumber of each column. The two
// entry points are:
//
//   - [DetectAndRegister] orders the columns, finds likely chip transitions
//     and returns a fresh [boundary.Registry] with every boundary included.
//   - [ApplyCorrection] stitches the matrix across the boundaries that are
//     currently included and returns a new matrix in the original column
//     layout.
//
// The subpackages can be used directly: [order] for the column permutation,
// [detect] for the detector, [boundary] for the inclusion state machine and
// [stitch] for the corrector.
//
// [order]: github.com/nicholsonbt/orange3-spectroscopy-plus/spectra/order
// [detect]: github.com/nicholsonbt/orange3-spectroscopy-plus/chip/detect
// [stitch]: github.com/nicholsonbt/orange3-spectroscopy-plus/chip/stitch
package chip
