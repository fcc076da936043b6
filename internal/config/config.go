// Package config handles tilemesh configuration loading and management.
package config

import "math"

// Config holds all tilemesh settings.
type Config struct {
	Build   BuildConfig   `yaml:"build"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// BuildConfig holds mesh building settings.
type BuildConfig struct {
	Resolution  int     `yaml:"resolution"`   // Side length of the sample grid, >= 2
	SkirtHeight float32 `yaml:"skirt_height"` // World-scale drop of the skirt ring
	NoData      float32 `yaml:"no_data"`      // Sample value written for NaN when encoding DEM tiles
}

// OutputConfig holds output settings for built geometry.
type OutputConfig struct {
	Dir      string `yaml:"dir"`       // Directory for generated buffers
	WriteOBJ bool   `yaml:"write_obj"` // Also dump a Wavefront OBJ for inspection
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			Resolution:  64,
			SkirtHeight: 0.1,
			NoData:      float32(math.NaN()),
		},
		Output: OutputConfig{
			Dir:      ".",
			WriteOBJ: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
