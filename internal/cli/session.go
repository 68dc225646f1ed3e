package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/chip/detect"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/internal/config"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/internal/logging"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/internal/table"
)

// sensitivityFlags are the per-command detection overrides.
type sensitivityFlags struct {
	alpha float64
	beta  float64
}

func (s *sensitivityFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&s.alpha, "alpha", detect.DefaultAlpha, "smoothing threshold in standard deviations (larger is stricter)")
	cmd.Flags().Float64Var(&s.beta, "beta", detect.DefaultBeta, "spike threshold in standard deviations")
}

// session is the resolved state shared by all subcommands.
type session struct {
	cfg   config.Config
	log   zerolog.Logger
	input *table.Table
}

func (s *session) format() table.Format {
	return table.Format{Delimiter: s.cfg.Table.Delimiter, Missing: s.cfg.Table.Missing}
}

// openSession loads config, applies flag overrides, builds the logger and
// reads the input table.
func openSession(cmd *cobra.Command, g *globalFlags, sens *sensitivityFlags, path string) (*session, error) {
	cfg, err := resolveConfig(cmd, g, sens)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, log: log}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s.input, err = table.Read(f, s.format())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	st := s.input.Stats()
	log.Debug().
		Str("path", path).
		Int("samples", s.input.Samples()).
		Int("spectral_columns", len(s.input.Wavenumbers)).
		Int("missing", st.Missing).
		Float64("min", st.Min).
		Float64("max", st.Max).
		Msg("table loaded")

	return s, nil
}

func resolveConfig(cmd *cobra.Command, g *globalFlags, sens *sensitivityFlags) (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if g.delimiter != "" {
		d, err := config.ParseDelimiter(g.delimiter)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Table.Delimiter = d
	}

	if sens != nil {
		if cmd.Flags().Changed("alpha") {
			cfg.Detection.Alpha = sens.alpha
		}
		if cmd.Flags().Changed("beta") {
			cfg.Detection.Beta = sens.beta
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// writeTable writes t to path, or to w when path is "-" or empty.
func writeTable(w io.Writer, path string, t *table.Table, f table.Format) error {
	if path == "" || path == "-" {
		return table.Write(w, t, f)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := table.Write(out, t, f); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
