package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/chip"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/chip/boundary"
)

type detectFlags struct {
	sensitivityFlags
	format string
}

func detectCmd(g *globalFlags) *cobra.Command {
	f := &detectFlags{}

	cmd := &cobra.Command{
		Use:   "detect <file>",
		Short: "List chip transitions found in a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, g, &f.sensitivityFlags, args[0])
			if err != nil {
				return err
			}

			det, err := s.detect()
			if err != nil {
				return err
			}

			switch f.format {
			case "pretty":
				return printBoundaries(cmd.OutOrStdout(), det.Registry.Boundaries())
			case "json":
				return printBoundariesJSON(cmd.OutOrStdout(), det)
			default:
				return fmt.Errorf("unknown format %q (want pretty or json)", f.format)
			}
		},
	}

	f.register(cmd)
	cmd.Flags().StringVar(&f.format, "format", "pretty", "output format: pretty|json")

	return cmd
}

func (s *session) detect(opts ...chip.Option) (*chip.Detection, error) {
	opts = append([]chip.Option{chip.WithLogger(s.log)}, opts...)

	return chip.DetectAndRegister(s.input.X, s.input.Wavenumbers,
		s.cfg.Detection.Alpha, s.cfg.Detection.Beta, opts...)
}

func printBoundaries(w io.Writer, bs []boundary.Boundary) error {
	if len(bs) == 0 {
		_, err := fmt.Fprintln(w, "no chip transitions found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Slot\tIndex\tWavenumber\tState\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "----\t-----\t----------\t-----\n"); err != nil {
		return err
	}

	for i, b := range bs {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.4f\t%s\n", i, b.Index, b.Wavenumber, b.State); err != nil {
			return err
		}
	}

	return tw.Flush()
}

type boundaryJSON struct {
	Slot       int     `json:"slot"`
	Index      int     `json:"index"`
	Wavenumber float64 `json:"wavenumber"`
	State      string  `json:"state"`
}

type detectionJSON struct {
	Std        *float64       `json:"std,omitempty"`
	Boundaries []boundaryJSON `json:"boundaries"`
}

func printBoundariesJSON(w io.Writer, det *chip.Detection) error {
	out := detectionJSON{Boundaries: []boundaryJSON{}}
	if !math.IsNaN(det.Std) && !math.IsInf(det.Std, 0) {
		out.Std = &det.Std
	}
	for i, b := range det.Registry.Boundaries() {
		out.Boundaries = append(out.Boundaries, boundaryJSON{
			Slot:       i,
			Index:      b.Index,
			Wavenumber: b.Wavenumber,
			State:      b.State.String(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
