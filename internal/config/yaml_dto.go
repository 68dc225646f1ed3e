package config

import (
	"fmt"
	"unicode/utf8"
)

type yamlConfig struct {
	Detection yamlDetection `yaml:"detection"`
	Table     yamlTable     `yaml:"table"`
	Log       yamlLog       `yaml:"log"`
}

type yamlDetection struct {
	Alpha *float64 `yaml:"alpha"`
	Beta  *float64 `yaml:"beta"`
}

type yamlTable struct {
	Delimiter *string `yaml:"delimiter"`
	Missing   *string `yaml:"missing"`
}

type yamlLog struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
}

// apply overlays the set fields of y on base and validates the result.
func (y yamlConfig) apply(base Config) (Config, error) {
	cfg := base

	if y.Detection.Alpha != nil {
		cfg.Detection.Alpha = *y.Detection.Alpha
	}
	if y.Detection.Beta != nil {
		cfg.Detection.Beta = *y.Detection.Beta
	}

	if y.Table.Delimiter != nil {
		d, err := parseDelimiter(*y.Table.Delimiter)
		if err != nil {
			return Config{}, err
		}
		cfg.Table.Delimiter = d
	}
	if y.Table.Missing != nil {
		cfg.Table.Missing = *y.Table.Missing
	}

	if y.Log.Level != nil {
		cfg.Log.Level = *y.Log.Level
	}
	if y.Log.Format != nil {
		cfg.Log.Format = *y.Log.Format
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parseDelimiter accepts a single character or one of the names "tab",
// "comma", "semicolon".
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	}

	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: table.delimiter %q must be a single character", ErrInvalid, s)
	}

	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}

// ParseDelimiter is the flag-facing form of the table.delimiter setting.
func ParseDelimiter(s string) (rune, error) {
	return parseDelimiter(s)
}
