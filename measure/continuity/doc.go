// Package continuity measures how smoothly spectra run across chip
// transitions, before and after stitching.
//
// [Steps] reports the intensity ratio and absolute jump at each boundary.
// [Roughness] reports the share of spectral power in the upper part of the
// band of a spectrum; a step discontinuity spreads power to high bins, so a
// successful stitch lowers it.
package continuity
