// Package logging builds the slog.Logger used by the argp tool from its
// --log-level and --log-format flags.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format is the log output format.
type Format uint8

const (
	FormatText Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}

type config struct {
	level  slog.Level
	format Format
	writer io.Writer
}

type Option func(*config)

func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

func WithFormat(format Format) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithWriter sets the log destination. A nil writer is ignored.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.writer = w
		}
	}
}

// New returns a logger writing warnings and above as text to stderr, unless
// told otherwise. Stdout is left to the parse result.
func New(opts ...Option) *slog.Logger {
	c := config{level: slog.LevelWarn, format: FormatText, writer: os.Stderr}
	for _, opt := range opts {
		opt(&c)
	}

	o := &slog.HandlerOptions{Level: c.level}
	if c.format == FormatJSON {
		return slog.New(slog.NewJSONHandler(c.writer, o))
	}
	return slog.New(slog.NewTextHandler(c.writer, o))
}

// ParseLevel accepts anything slog.Level.UnmarshalText does, ignoring case.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// ParseFormat accepts "text" or "json", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("invalid log format %q", s)
	}
}
