// Package config loads chipstitch settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/chip/detect"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "chipstitch.yaml"

// Sentinel errors for broad classification.
var (
	ErrNotFound = errors.New("config not found")
	ErrInvalid  = errors.New("invalid config")
)

// Error wraps a config failure with the operation and file path.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s (path=%s): %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Config is the resolved chipstitch configuration.
type Config struct {
	Detection detect.Config
	Table     Table
	Log       Log
}

// Table controls how sample tables are read and written.
type Table struct {
	// Delimiter separates fields; "\t" for Orange .tab files.
	Delimiter rune
	// Missing is written for NaN cells and accepted on input.
	Missing string
}

// Log controls logger output.
type Log struct {
	Level  string
	Format string // console or json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Detection: detect.DefaultConfig(),
		Table: Table{
			Delimiter: '\t',
			Missing:   "?",
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path and overlays it on [Default]. A missing file at the
// default location is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, &Error{Op: "config.load", Path: path, Err: errors.Join(ErrNotFound, err)}
	}

	cfg, err := Parse(b)
	if err != nil {
		return Config{}, &Error{Op: "config.load", Path: path, Err: err}
	}

	return cfg, nil
}

// Parse decodes YAML and overlays it on [Default].
func Parse(b []byte) (Config, error) {
	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Config{}, errors.Join(ErrInvalid, err)
	}

	return dto.apply(Default())
}

// Validate checks the resolved configuration.
func (c Config) Validate() error {
	if err := c.Detection.Validate(); err != nil {
		return fmt.Errorf("%w: detection: %w", ErrInvalid, err)
	}

	if c.Table.Delimiter == 0 || c.Table.Delimiter == '\n' || c.Table.Delimiter == '\r' || c.Table.Delimiter == '"' {
		return fmt.Errorf("%w: table.delimiter %q", ErrInvalid, c.Table.Delimiter)
	}

	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q (expected console|json)", ErrInvalid, c.Log.Format)
	}

	return nil
}
