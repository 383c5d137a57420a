// Package config holds the importer options.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Options tune how features are materialized into the drawing.
type Options struct {
	// Scale multiplies every coordinate. The original importer kept this
	// as a module-level constant; here it is the single tunable knob.
	Scale float64 `yaml:"scale"`

	// PointRadius is the circle radius used for Point and MultiPoint
	// features, in drawing units.
	PointRadius float64 `yaml:"point_radius"`

	// Mercator reprojects geographic (EPSG:4326) coordinates to web
	// mercator (EPSG:3857) before scaling.
	Mercator bool `yaml:"mercator"`
}

// Default returns the options used when no configuration file is supplied.
func Default() *Options {
	return &Options{
		Scale:       1,
		PointRadius: 0.005,
	}
}

// Load reads and parses a YAML options file. Zero values fall back to the
// defaults.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, err
	}

	if opts.Scale == 0 {
		opts.Scale = 1
	}
	if opts.PointRadius == 0 {
		opts.PointRadius = 0.005
	}

	return opts, nil
}
