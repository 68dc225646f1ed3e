package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/chip"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/internal/logging"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/internal/tui"
)

type editFlags struct {
	sensitivityFlags
	output string
}

func editCmd(g *globalFlags) *cobra.Command {
	f := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Review chip transitions interactively and write the corrected table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.output == "" || f.output == "-" {
				return errors.New("edit needs an output file (-o)")
			}

			s, err := openSession(cmd, g, &f.sensitivityFlags, args[0])
			if err != nil {
				return err
			}

			log := logging.Component(s.log, "tui")

			return tui.Run(tui.Deps{
				Detect: func(alpha, beta float64, opts ...chip.Option) (*chip.Detection, error) {
					opts = append([]chip.Option{chip.WithLogger(log)}, opts...)
					return chip.DetectAndRegister(s.input.X, s.input.Wavenumbers, alpha, beta, opts...)
				},
				Save: func(selected []int) error {
					out, err := s.correct(selected)
					if err != nil {
						return err
					}
					return writeTable(cmd.OutOrStdout(), f.output, s.input.WithX(out), s.format())
				},
				Target: f.output,
				Alpha:  s.cfg.Detection.Alpha,
				Beta:   s.cfg.Detection.Beta,
				Log:    log,
			})
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file")

	return cmd
}
