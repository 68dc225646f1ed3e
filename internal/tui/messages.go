package tui

import "github.com/nicholsonbt/orange3-spectroscopy-plus/chip"

type detectedMsg struct {
	det   *chip.Detection
	alpha float64
	beta  float64
	err   error
}

type savedMsg struct {
	selected []int
	err      error
}
