package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Point output formats
const (
	formatXY             = "xy"
	formatSEC1           = "sec1"
	formatSEC1Compressed = "sec1-compressed"
)

// Config is the optional TOML configuration of the p256 tool.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
	Gen    GenConfig    `toml:"gen"`
}

// LogConfig controls the diagnostic logger, which writes to stderr.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // console or json
}

// OutputConfig controls how points are printed.
type OutputConfig struct {
	Format string `toml:"format"` // xy, sec1 or sec1-compressed
}

// GenConfig holds the defaults of the gen command.
type GenConfig struct {
	Count   int    `toml:"count"`
	Workers int    `toml:"workers"`
	Out     string `toml:"out"`
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Output: OutputConfig{
			Format: formatXY,
		},
		Gen: GenConfig{
			Count:   1000,
			Workers: 4,
			Out:     "keys.json",
		},
	}
}

// loadConfig reads path over the defaults. Unknown keys are an error so
// typos do not go unnoticed.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return errors.Errorf("invalid log format %q", c.Log.Format)
	}

	switch c.Output.Format {
	case formatXY, formatSEC1, formatSEC1Compressed:
	default:
		return errors.Errorf("invalid output format %q", c.Output.Format)
	}

	if c.Gen.Count < 0 {
		return errors.Errorf("invalid key count %d", c.Gen.Count)
	}
	if c.Gen.Workers < 1 {
		return errors.Errorf("invalid worker count %d", c.Gen.Workers)
	}
	if c.Gen.Out == "" {
		return errors.New("empty gen output path")
	}
	return nil
}
