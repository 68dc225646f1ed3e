package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/chip"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/measure/continuity"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/spectra/order"
)

type correctFlags struct {
	sensitivityFlags
	output  string
	exclude []int
}

func correctCmd(g *globalFlags) *cobra.Command {
	f := &correctFlags{}

	cmd := &cobra.Command{
		Use:   "correct <file>",
		Short: "Stitch every spectrum across the detected chip transitions",
		Long: `correct detects chip transitions and rescales each spectrum so that the
segments join. Slots listed with --exclude (as printed by detect) are left
uncorrected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, g, &f.sensitivityFlags, args[0])
			if err != nil {
				return err
			}

			det, err := s.detect()
			if err != nil {
				return err
			}

			for _, slot := range f.exclude {
				if err := det.Registry.Exclude(slot); err != nil {
					return fmt.Errorf("--exclude %d: %w", slot, err)
				}
			}

			out, err := s.correct(det.Registry.Selected())
			if err != nil {
				return err
			}

			return writeTable(cmd.OutOrStdout(), f.output, s.input.WithX(out), s.format())
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "-", `output file ("-" for stdout)`)
	cmd.Flags().IntSliceVar(&f.exclude, "exclude", nil, "boundary slots to leave uncorrected")

	return cmd
}

// correct stitches the input across a selection snapshot and logs a
// continuity report comparing input and output at the same boundaries.
func (s *session) correct(selected []int) (*mat.Dense, error) {
	out, err := chip.ApplySelection(s.input.X, s.input.Wavenumbers, selected, chip.WithLogger(s.log))
	if err != nil {
		return nil, err
	}

	if len(selected) == 0 || s.input.Samples() == 0 {
		s.log.Info().Msg("no boundaries selected; table written unchanged")
		return out, nil
	}

	perm := order.Compute(s.input.Wavenumbers)
	a := continuity.NewAnalyzer(continuity.Config{})
	before := a.Analyze(perm.Apply(s.input.X), selected)
	after := a.Analyze(perm.Apply(out), selected)

	logReport(s.log, before, after)

	return out, nil
}

func logReport(log zerolog.Logger, before, after continuity.Result) {
	for i, b := range before.Steps {
		ev := log.Debug().
			Int("index", b.Index).
			Float64("ratio_before", b.Ratio).
			Float64("jump_before", b.Jump).
			Int("samples", b.Samples).
			Int("missing", b.Missing)
		if i < len(after.Steps) {
			ev = ev.
				Float64("ratio_after", after.Steps[i].Ratio).
				Float64("jump_after", after.Steps[i].Jump)
		}
		ev.Msg("boundary step")
	}

	log.Info().
		Int("boundaries", len(before.Steps)).
		Float64("roughness_before", before.Roughness).
		Float64("roughness_after", after.Roughness).
		Msg("spectra stitched")
}
