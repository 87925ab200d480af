// Package config loads nuclide CLI configuration.
//
// Values are layered with koanf, lowest to highest priority:
// built-in defaults, a nuclide.yaml file, NUCLIDE_* environment variables,
// and explicitly set command-line flags.
package config

import (
	"github.com/leapstack-labs/nuclide/internal/chart"
	"github.com/leapstack-labs/nuclide/internal/report"
	"github.com/leapstack-labs/nuclide/pkg/nuclide"
)

// Default configuration values.
const (
	DefaultOutput       = "auto" // TTY=text, non-TTY=markdown
	DefaultLogLevel     = "info"
	DefaultChartsDir    = "charts"
	DefaultChartsFormat = chart.FormatPNG
	DefaultChartsWidth  = 6.0
	DefaultChartsHeight = 4.0
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "NUCLIDE_"

// ConfigFileNames are searched, in order, in the working directory.
var ConfigFileNames = []string{"nuclide.yaml", "nuclide.yml"}

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string         `koanf:"output"`
	Verbose      bool           `koanf:"verbose"`
	LogLevel     string         `koanf:"log_level"`
	Charts       ChartsConfig   `koanf:"charts"`
	Nuclides     []nuclide.Pair `koanf:"nuclides"`
}

// ChartsConfig controls chart rendering.
type ChartsConfig struct {
	Enabled bool    `koanf:"enabled"`
	Dir     string  `koanf:"dir"`
	Format  string  `koanf:"format"`
	Width   float64 `koanf:"width"`
	Height  float64 `koanf:"height"`
}

// ChartOptions converts the chart settings to renderer options.
func (c ChartsConfig) ChartOptions() chart.Options {
	return chart.Options{Width: c.Width, Height: c.Height, Format: c.Format}
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	pairs := make([]nuclide.Pair, len(report.ReferenceScenario))
	copy(pairs, report.ReferenceScenario)
	return &Config{
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
		Charts: ChartsConfig{
			Enabled: true,
			Dir:     DefaultChartsDir,
			Format:  DefaultChartsFormat,
			Width:   DefaultChartsWidth,
			Height:  DefaultChartsHeight,
		},
		Nuclides: pairs,
	}
}
