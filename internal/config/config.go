// Package config loads the xsdspace configuration file.
package config

import (
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultMaxEnumeration caps the values materialized per query.
const DefaultMaxEnumeration = 4096

// Config is the configuration of the xsdspace command.
type Config struct {
	// LogLevel is a logrus level name.
	LogLevel string `toml:"log_level"`
	// LogFormat selects the logrus formatter: "text" or "json".
	LogFormat string `toml:"log_format"`
	// MaxEnumeration caps the values materialized per query.
	MaxEnumeration int `toml:"max_enumeration"`
	// Workers is the number of queries evaluated concurrently.
	Workers int `toml:"workers"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel:       "info",
		LogFormat:      "text",
		MaxEnumeration: DefaultMaxEnumeration,
		Workers:        runtime.GOMAXPROCS(0),
	}
}

// Load decodes the TOML file at path over the defaults. A missing file is
// not an error when path is empty.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); err != nil {
		return c, errors.Wrapf(err, "stat config file %q", path)
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, errors.Wrapf(err, "decode config file %q", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return c, errors.Errorf("config file %q: unknown key %q", path, undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return c, errors.Wrapf(err, "config file %q", path)
	}
	return c, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	if c.MaxEnumeration <= 0 {
		return errors.Errorf("max_enumeration must be positive, got %d", c.MaxEnumeration)
	}
	if c.Workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// Logger returns a logrus logger configured with the level and format.
func (c Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log_level")
	}
	log := logrus.New()
	log.SetLevel(level)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log, nil
}
