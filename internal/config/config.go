// Package config loads engine settings from an optional YAML file and
// the environment. Precedence is defaults, then file, then environment
// variables prefixed SPEAKSHARP_ (SPEAKSHARP_DB_PATH maps to db.path).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "SPEAKSHARP_"

// Config holds every tunable the CLI and engine read at startup.
type Config struct {
	DB struct {
		Path string `koanf:"path"`
	} `koanf:"db"`
	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
	} `koanf:"log"`
	Review struct {
		Limit int `koanf:"limit"`
	} `koanf:"review"`
	BKT struct {
		PGuess float64 `koanf:"p_guess"`
		PSlip  float64 `koanf:"p_slip"`
	} `koanf:"bkt"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	var c Config
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Review.Limit = 20
	c.BKT.PGuess = 0.2
	c.BKT.PSlip = 0.1
	return c
}

// Load reads path (if non-empty and present) and the environment on top
// of the defaults. A missing explicit file is an error; a missing
// default file is not.
func Load(path string) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	explicit := path != ""
	if path == "" {
		path = defaultPath()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return cfg, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	// SPEAKSHARP_BKT_P_GUESS becomes bkt.p_guess: the first underscore
	// after the prefix splits the section, the rest stays a key.
	// Variables without a section (SPEAKSHARP_DB, SPEAKSHARP_LEARNER)
	// belong to other layers and are skipped.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if !strings.Contains(s, "_") {
			return ""
		}
		return strings.Replace(s, "_", ".", 1)
	}), nil); err != nil {
		return cfg, fmt.Errorf("load env: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.Review.Limit <= 0 {
		return fmt.Errorf("review limit must be positive, got %d", c.Review.Limit)
	}
	if c.BKT.PGuess <= 0 || c.BKT.PGuess >= 1 {
		return fmt.Errorf("bkt p_guess must be in (0, 1), got %g", c.BKT.PGuess)
	}
	if c.BKT.PSlip <= 0 || c.BKT.PSlip >= 1 {
		return fmt.Errorf("bkt p_slip must be in (0, 1), got %g", c.BKT.PSlip)
	}
	return nil
}

func defaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = home + "/.config"
	}
	return base + "/speaksharp/config.yaml"
}
