// Package logcfg builds slog loggers from a small YAML, literal or
// environment configuration. It configures the logging facility the caller
// injects into logspan; it never touches logspan's own behavior.
package logcfg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes the logger to build. The zero value means defaults
// throughout: info-level text lines on stderr.
type Config struct {
	Level     string `yaml:"level"`      // debug | info | warn | warning | error
	Format    string `yaml:"format"`     // text | json
	Output    string `yaml:"output"`     // stderr | stdout | file path
	AddSource bool   `yaml:"add_source"` // annotate records with file:line
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{Level: "info", Format: "text", Output: "stderr"}
}

// Load reads a YAML Config from path. Unset fields fall back to Default
// values; unknown fields are an error, so typos do not silently configure
// nothing.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("logcfg: read %s: %w", path, err)
	}
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("logcfg: parse %s: %w", path, err)
	}
	c.fillDefaults()
	return c, nil
}

// FromEnv builds a Config from LOGSPAN_LEVEL, LOGSPAN_FORMAT, LOGSPAN_OUTPUT
// and LOGSPAN_ADD_SOURCE (strconv.ParseBool syntax), with Default values for
// unset variables.
func FromEnv() Config {
	c := Default()
	if v := os.Getenv("LOGSPAN_LEVEL"); v != "" {
		c.Level = v
	}
	if v := os.Getenv("LOGSPAN_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("LOGSPAN_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("LOGSPAN_ADD_SOURCE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.AddSource = b
		}
	}
	return c
}

// Build constructs the slog.Logger the config describes. When Output is a
// file path, the file is opened for appending and stays open for the process
// lifetime, the way logging facilities hold on to their handlers.
func (c Config) Build() (*slog.Logger, error) {
	c.fillDefaults()
	// Validate the format before writer() opens the output file, so a
	// rejected config never leaves a file created or open.
	format := strings.ToLower(c.Format)
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("logcfg: unknown format %q", c.Format)
	}
	w, err := c.writer()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(c.Level), AddSource: c.AddSource}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// Init builds the logger and installs it as the slog default, so package-level
// slog calls pick it up. Returns the logger for direct use.
func Init(c Config) (*slog.Logger, error) {
	l, err := c.Build()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(l)
	return l, nil
}

// Configure is Load followed by Init: install the default logger described
// by the YAML file at path. For an in-code configuration, pass a Config
// literal to Init instead.
func Configure(path string) (*slog.Logger, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Init(c)
}

// ParseLevel converts a string ("debug", "info", "warn", "warning", "error")
// to a slog.Level. Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.Level == "" {
		c.Level = d.Level
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.Output == "" {
		c.Output = d.Output
	}
}

func (c Config) writer() (io.Writer, error) {
	switch c.Output {
	case "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("logcfg: open %s: %w", c.Output, err)
		}
		return f, nil
	}
}
