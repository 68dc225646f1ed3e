// Package tui is an interactive boundary editor.
//
// It lists the detected chip transitions, lets the user include or exclude
// each one and re-run detection with different sensitivities, and writes
// the corrected table on request.
package tui

import (
	"github.com/rs/zerolog"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/chip"
)

// Deps are the editor's collaborators.
type Deps struct {
	// Detect runs detection with the given sensitivities.
	Detect func(alpha, beta float64, opts ...chip.Option) (*chip.Detection, error)
	// Save corrects and writes the table for a snapshot of the selection.
	Save func(selected []int) error
	// Target names where Save writes, for display only.
	Target string

	Alpha float64
	Beta  float64

	Log zerolog.Logger
}
