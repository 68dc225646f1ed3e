package continuity

import (
	"errors"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/spectra"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/stats/column"
)

const defaultCutoff = 0.25

var (
	// ErrNonFinite is returned when a spectrum holds NaN or Inf values.
	ErrNonFinite = errors.New("spectrum contains non-finite values")
	// ErrTooShort is returned for spectra with fewer than two values.
	ErrTooShort = errors.New("spectrum needs at least two values")
)

// Config holds roughness parameters.
type Config struct {
	// Cutoff is the fraction of the Nyquist bin above which power counts
	// as rough. Values outside (0, 1) fall back to 0.25.
	Cutoff float64
	// FFTSize is the transform length. Zero or values shorter than the
	// spectrum use the next power of two.
	FFTSize int
}

// Step summarises one boundary across all samples.
type Step struct {
	// Index is the ordered-column gap.
	Index int
	// Ratio is the mean of left/right over samples with finite values.
	Ratio float64
	// Jump is the mean absolute difference right-left.
	Jump float64
	// Samples counts the rows with a usable ratio; Missing counts the rows
	// skipped for a NaN cell or a zero right-hand value.
	Samples int
	Missing int
}

// Result holds a full continuity report.
type Result struct {
	Steps     []Step
	Roughness float64 // NaN when the mean spectrum is not finite
}

// Analyzer computes continuity reports with a fixed configuration.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: normalizeConfig(cfg)}
}

// Analyze reports steps at the given boundaries and the roughness of the
// NaN-ignoring mean spectrum of ordered.
func (a *Analyzer) Analyze(ordered mat.Matrix, boundaries []int) Result {
	res := Result{
		Steps:     Steps(ordered, boundaries),
		Roughness: math.NaN(),
	}

	if r, err := Roughness(spectra.MeanRow(ordered), a.cfg); err == nil {
		res.Roughness = r
	}

	return res
}

// Steps returns the mean ratio and jump at every boundary that has a right
// neighbour. NaN cells are skipped.
func Steps(ordered mat.Matrix, boundaries []int) []Step {
	rows, cols := spectra.Dims(ordered)
	out := make([]Step, 0, len(boundaries))

	ratios := make([]float64, rows)
	jumps := make([]float64, rows)

	for _, b := range boundaries {
		if b < 0 || b+1 >= cols {
			continue
		}

		for i := range rows {
			left := ordered.At(i, b)
			right := ordered.At(i, b+1)
			ratios[i] = left / right
			jumps[i] = math.Abs(right - left)

			if math.IsInf(ratios[i], 0) {
				ratios[i] = math.NaN()
			}
		}

		st := column.Calculate(ratios)
		out = append(out, Step{
			Index:   b,
			Ratio:   st.Mean,
			Jump:    column.Mean(jumps),
			Samples: st.Count,
			Missing: st.Missing,
		})
	}

	return out
}

// Roughness returns the fraction of one-sided power (DC excluded) above
// cfg.Cutoff of the Nyquist bin. The spectrum is mean-removed and
// Hann-windowed first. A constant spectrum has roughness 0.
func Roughness(spectrum []float64, cfg Config) (float64, error) {
	cfg = normalizeConfig(cfg)

	n := len(spectrum)
	if n < 2 {
		return 0, ErrTooShort
	}

	for _, v := range spectrum {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrNonFinite
		}
	}

	fftSize := cfg.FFTSize
	if fftSize < n {
		fftSize = nextPowerOf2(n)
	}

	mean := column.Mean(spectrum)
	centered := make([]float64, n)
	for i, v := range spectrum {
		centered[i] = v - mean
	}

	windowed := make([]float64, n)
	vecmath.MulBlock(windowed, centered, hann(n))

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, err
	}

	bins := make([]complex128, fftSize)
	if err := plan.Forward(bins, in); err != nil {
		return 0, err
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for k := range half {
		re[k] = real(bins[k])
		im[k] = imag(bins[k])
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	nyquist := float64(half - 1)
	var total, high float64
	for k := 1; k < half; k++ {
		total += power[k]
		if float64(k) > cfg.Cutoff*nyquist {
			high += power[k]
		}
	}

	if total == 0 {
		return 0, nil
	}

	return high / total, nil
}

// hann returns the periodic Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}

	return w
}

func normalizeConfig(cfg Config) Config {
	if !(cfg.Cutoff > 0 && cfg.Cutoff < 1) {
		cfg.Cutoff = defaultCutoff
	}

	if cfg.FFTSize < 0 {
		cfg.FFTSize = 0
	}

	return cfg
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
