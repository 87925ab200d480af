package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/nuclide/internal/chart"
	"github.com/leapstack-labs/nuclide/internal/cli/output"
)

// Validate checks that the configuration is usable.
// Nuclide pairs are not validated; A <= 0 is reported per row at evaluation.
func (c *Config) Validate() error {
	if !output.IsValidMode(c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (want auto, text, markdown, json or yaml)", c.OutputFormat)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if !chart.IsFormat(c.Charts.Format) {
		return fmt.Errorf("invalid charts.format %q (want one of %s)", c.Charts.Format, strings.Join(chart.Formats, ", "))
	}
	if c.Charts.Width <= 0 || c.Charts.Height <= 0 {
		return fmt.Errorf("charts.width and charts.height must be positive, got %gx%g", c.Charts.Width, c.Charts.Height)
	}
	if c.Charts.Enabled && c.Charts.Dir == "" {
		return fmt.Errorf("charts.dir is required when charts are enabled")
	}
	return nil
}

// ParseLogLevel converts a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q (want debug, info, warn or error)", s)
	}
}
