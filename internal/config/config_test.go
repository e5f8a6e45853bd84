package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xsdspace.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.MaxEnumeration != DefaultMaxEnumeration || c.LogLevel != "info" || c.Workers <= 0 {
		t.Fatalf("Load() = %+v, want defaults", c)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
log_format = "json"
max_enumeration = 10
workers = 2
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{LogLevel: "debug", LogFormat: "json", MaxEnumeration: 10, Workers: 2}
	if c != want {
		t.Fatalf("Load() = %+v, want %+v", c, want)
	}
	log, err := c.Logger()
	if err != nil {
		t.Fatalf("Logger() error = %v", err)
	}
	if log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("Logger() level = %s, want debug", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("Logger() formatter = %T, want JSON", log.Formatter)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, `workers = 3`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Workers != 3 || c.MaxEnumeration != DefaultMaxEnumeration || c.LogFormat != "text" {
		t.Fatalf("Load() = %+v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{name: "syntax", body: `log_level = `, errMsg: "decode config file"},
		{name: "unknown key", body: `colour = "red"`, errMsg: `unknown key "colour"`},
		{name: "bad level", body: `log_level = "loud"`, errMsg: "log_level"},
		{name: "bad format", body: `log_format = "xml"`, errMsg: "log_format"},
		{name: "zero enumeration", body: `max_enumeration = 0`, errMsg: "max_enumeration"},
		{name: "negative workers", body: `workers = -1`, errMsg: "workers"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatalf("Load() expected error")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Fatalf("Load() error = %v, want containing %q", err, tc.errMsg)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("Load() of a missing file should fail")
	}
}
