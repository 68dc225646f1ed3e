// Command chipstitch detects and corrects chip transitions in spectrometer
// data.
//
// Usage:
//
//	chipstitch detect [flags] <file>
//	chipstitch correct [flags] <file> -o <out>
//	chipstitch edit [flags] <file> -o <out>
//
// Examples:
//
//	chipstitch detect spectra.tsv
//	chipstitch detect --alpha 1.5 --format json spectra.tsv
//	chipstitch correct --exclude 1 spectra.tsv -o stitched.tsv
//	chipstitch edit spectra.tsv -o stitched.tsv
package main

import "github.com/nicholsonbt/orange3-spectroscopy-plus/internal/cli"

func main() {
	cli.Execute()
}
