package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/nuclide/pkg/nuclide"
)

// loggerKey is used to store the logger in a command context.
type loggerKey struct{}

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config
)

// findConfigFile returns explicit if set, otherwise the first default config
// file present in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range ConfigFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

func defaultValues() map[string]interface{} {
	d := Default()
	pairs := make([]interface{}, 0, len(d.Nuclides))
	for _, p := range d.Nuclides {
		pairs = append(pairs, map[string]interface{}{"a": p.A, "z": p.Z})
	}
	return map[string]interface{}{
		"output":         d.OutputFormat,
		"verbose":        d.Verbose,
		"log_level":      d.LogLevel,
		"charts.enabled": d.Charts.Enabled,
		"charts.dir":     d.Charts.Dir,
		"charts.format":  d.Charts.Format,
		"charts.width":   d.Charts.Width,
		"charts.height":  d.Charts.Height,
		"nuclides":       pairs,
	}
}

// envKey maps NUCLIDE_CHARTS__DIR to charts.dir and NUCLIDE_LOG_LEVEL to log_level.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// flagKey maps a changed flag to its config key and value. An empty key
// means the flag is not part of the koanf tree.
func flagKey(flags *pflag.FlagSet, f *pflag.Flag) (string, interface{}) {
	if !f.Changed {
		return "", nil
	}
	switch f.Name {
	case "config", "nuclide":
		return "", nil
	case "no-charts":
		v, _ := flags.GetBool("no-charts")
		return "charts.enabled", !v
	case "charts-dir":
		return "charts.dir", posflag.FlagVal(flags, f)
	case "charts-format":
		return "charts.format", posflag.FlagVal(flags, f)
	}
	return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
}

// LoadConfig loads configuration from defaults, file, environment and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k = koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultValues(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables (NUCLIDE_ prefix)
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			return flagKey(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if flags != nil && flags.Lookup("nuclide") != nil && flags.Changed("nuclide") {
		specs, _ := flags.GetStringSlice("nuclide")
		pairs, err := ParsePairs(specs)
		if err != nil {
			return nil, err
		}
		cfg.Nuclides = pairs
	}

	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	currentConfig = &cfg
	return &cfg, nil
}

// ParsePairs parses "A:Z" specs such as "238:92".
func ParsePairs(specs []string) ([]nuclide.Pair, error) {
	pairs := make([]nuclide.Pair, 0, len(specs))
	for _, spec := range specs {
		p, err := ParsePair(spec)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// ParsePair parses a single "A:Z" spec.
func ParsePair(spec string) (nuclide.Pair, error) {
	aStr, zStr, ok := strings.Cut(strings.TrimSpace(spec), ":")
	if !ok {
		return nuclide.Pair{}, fmt.Errorf("invalid nuclide %q: want A:Z, e.g. 238:92", spec)
	}
	a, err := strconv.Atoi(strings.TrimSpace(aStr))
	if err != nil {
		return nuclide.Pair{}, fmt.Errorf("invalid mass number in %q: %w", spec, err)
	}
	z, err := strconv.Atoi(strings.TrimSpace(zStr))
	if err != nil {
		return nuclide.Pair{}, fmt.Errorf("invalid atomic number in %q: %w", spec, err)
	}
	return nuclide.Pair{A: a, Z: z}, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the configuration from the last successful load.
func GetCurrentConfig() *Config {
	return currentConfig
}

// NewLogger builds the CLI logger for cfg, writing text records to w.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return slog.New(slog.DiscardHandler)
}
