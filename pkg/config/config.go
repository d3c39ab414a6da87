// Package config loads PanCAD tool settings from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the command line tools.
type Config struct {
	// Units sets the default length unit for dimensioned constraints.
	Units string `yaml:"units"`

	Tolerance struct {
		// Absolute and Relative override the comparison tolerances.
		// Zero keeps the built-in defaults.
		Absolute float64 `yaml:"absolute"`
		Relative float64 `yaml:"relative"`
	} `yaml:"tolerance"`

	SVG struct {
		Margin              float64 `yaml:"margin"`
		Scale               float64 `yaml:"scale"`
		StrokeWidth         float64 `yaml:"stroke_width"`
		IncludeConstruction bool    `yaml:"include_construction"`
	} `yaml:"svg"`

	Solid struct {
		// MeshCells is the marching cubes resolution along the longest axis.
		MeshCells int `yaml:"mesh_cells"`
	} `yaml:"solid"`

	// OutputDir is where exported files land when no explicit path is given.
	OutputDir string `yaml:"output_dir"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{
		Units:     "mm",
		OutputDir: ".",
	}
	cfg.SVG.Margin = 5
	cfg.SVG.Scale = 1
	cfg.SVG.StrokeWidth = 0.5
	cfg.SVG.IncludeConstruction = true
	cfg.Solid.MeshCells = 200
	return cfg
}

// Load reads the configuration at path, falling back to defaults when the
// file does not exist. Environment variables PANCAD_UNITS and
// PANCAD_OUTPUT_DIR override the file's values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if units := os.Getenv("PANCAD_UNITS"); units != "" {
		cfg.Units = units
	}
	if dir := os.Getenv("PANCAD_OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}
	return cfg, nil
}
