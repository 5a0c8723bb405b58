// SPDX-License-Identifier: MIT

// Package config loads the simulator configuration from a TOML or YAML file.
//
// Defaults are filled in first and the file is decoded on top of them, so a
// value written explicitly (even a zero) always wins. The result is then
// checked with struct-tag validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	ErrUnknownFormat = errors.New("config: unknown file format")
	ErrInvalid       = errors.New("config: invalid configuration")
)

// Format names accepted by Parse.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

var validate = validator.New()

// Config is the full simulator configuration.
type Config struct {
	Topology   Topology   `toml:"topology" yaml:"topology"`
	Simulation Simulation `toml:"simulation" yaml:"simulation"`
	Congestion Congestion `toml:"congestion" yaml:"congestion"`
	Log        Log        `toml:"log" yaml:"log"`
	Metrics    Metrics    `toml:"metrics" yaml:"metrics"`
}

// Topology sources.
const (
	SourceFile   = "file"
	SourceWaxman = "waxman"
)

// Topology selects where the network comes from: a BRITE file, or a
// synthetic Waxman topology generated at startup.
// NumNodes and NumEdges both zero means "read the counts from the header".
type Topology struct {
	Source        string  `toml:"source" yaml:"source" validate:"oneof=file waxman"`
	File          string  `toml:"file" yaml:"file" validate:"required_if=Source file"`
	NumNodes      int     `toml:"num_nodes" yaml:"num_nodes" validate:"min=0"`
	NumEdges      int     `toml:"num_edges" yaml:"num_edges" validate:"min=0"`
	CapacityScale float64 `toml:"capacity_scale" yaml:"capacity_scale" validate:"gt=0"`
	Waxman        Waxman  `toml:"waxman" yaml:"waxman"`
}

// Waxman parameters of the synthetic generator (BRITE RTWaxman defaults).
type Waxman struct {
	Nodes int     `toml:"nodes" yaml:"nodes" validate:"min=2"`
	Links int     `toml:"links" yaml:"links" validate:"min=1"`
	Alpha float64 `toml:"alpha" yaml:"alpha" validate:"gt=0,lte=1"`
	Beta  float64 `toml:"beta" yaml:"beta" validate:"gt=0,lte=1"`
	Seed  int64   `toml:"seed" yaml:"seed"`
}

// Simulation drives the episode loop.
type Simulation struct {
	Seed          int64  `toml:"seed" yaml:"seed"`
	Policy        string `toml:"policy" yaml:"policy" validate:"oneof=shaped simple"`
	Flows         int    `toml:"flows" yaml:"flows" validate:"min=0"`
	MaxAttempts   int    `toml:"max_attempts" yaml:"max_attempts" validate:"min=1"`
	Episodes      int    `toml:"episodes" yaml:"episodes" validate:"min=1"`
	MaxSteps      int    `toml:"max_steps" yaml:"max_steps" validate:"min=1"`
	TimeoutFactor int    `toml:"timeout_factor" yaml:"timeout_factor" validate:"min=1"`
}

// Congestion holds the perturbation exponents and clamps.
type Congestion struct {
	LatencyExponent  float64 `toml:"latency_exponent" yaml:"latency_exponent" validate:"gt=0"`
	CapacityExponent float64 `toml:"capacity_exponent" yaml:"capacity_exponent" validate:"gt=0"`
	MaxWeight        float64 `toml:"max_weight" yaml:"max_weight" validate:"gt=0"`
	MinCapacity      float64 `toml:"min_capacity" yaml:"min_capacity" validate:"gte=0"`
}

// Log configures logrus; File empty means stdout only.
type Log struct {
	Level string `toml:"level" yaml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	File  string `toml:"file" yaml:"file"`
}

// Metrics configures the Prometheus endpoint; Addr empty disables it.
type Metrics struct {
	Addr string `toml:"addr" yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns a configuration with every optional field set.
func Default() Config {
	return Config{
		Topology: Topology{
			Source:        SourceFile,
			NumNodes:      100,
			NumEdges:      200,
			CapacityScale: 100,
			Waxman: Waxman{
				Nodes: 100,
				Links: 2,
				Alpha: 0.15,
				Beta:  0.2,
				Seed:  1,
			},
		},
		Simulation: Simulation{
			Seed:          1,
			Policy:        "shaped",
			Flows:         10,
			MaxAttempts:   10000,
			Episodes:      1,
			MaxSteps:      10000,
			TimeoutFactor: 10,
		},
		Congestion: Congestion{
			LatencyExponent:  0.3,
			CapacityExponent: 1.2,
			MaxWeight:        0.999,
			MinCapacity:      0.001,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path, picking the decoder from its extension
// (.toml, .yaml or .yml). A relative topology file is resolved against the
// directory of the config file.
func Load(path string) (*Config, error) {
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Topology.File != "" && !filepath.IsAbs(cfg.Topology.File) {
		cfg.Topology.File = filepath.Join(filepath.Dir(path), cfg.Topology.File)
	}

	return cfg, nil
}

// Parse decodes data in the given format over Default and validates it.
func Parse(data []byte, format string) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("config: decode toml: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, keys[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError reports the first failing field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	e := verrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalid, e.Namespace())
	case "oneof":
		return fmt.Errorf("%w: %s must be one of [%s], got %v", ErrInvalid, e.Namespace(), e.Param(), e.Value())
	case "required_if":
		return fmt.Errorf("%w: %s is required when %s", ErrInvalid, e.Namespace(), e.Param())
	case "min", "gt", "gte", "lte":
		return fmt.Errorf("%w: %s must be %s %s, got %v", ErrInvalid, e.Namespace(), e.Tag(), e.Param(), e.Value())
	default:
		return fmt.Errorf("%w: %s failed %q", ErrInvalid, e.Namespace(), e.Tag())
	}
}
