// SPDX-License-Identifier: MPL-2.0

// Package logging builds the charmbracelet logger used across jlinkrun,
// optionally teeing into a size-rotated log file.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Format values.
const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
)

var (
	// ErrInvalidLevel is returned when a level name is not recognized.
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrInvalidFormat is returned when a format name is not recognized.
	ErrInvalidFormat = errors.New("invalid log format")
)

type (
	// Format selects the log line encoding.
	Format string

	// Options configure New. Zero values mean info level, text format and no file.
	Options struct {
		Level  string
		Format Format
		// Verbose forces debug level regardless of Level.
		Verbose bool
		// Prefix is printed before every message.
		Prefix string
		File   FileOptions
	}

	// FileOptions configure the rotated log file.
	FileOptions struct {
		// Path of the log file; empty disables file logging.
		Path       string
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
		Compress   bool
	}
)

// New creates a logger writing to w and, when o.File.Path is set, to a rotated
// file. The returned closer releases the file and is never nil.
func New(w io.Writer, o Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if o.Level != "" {
		l, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(o.Level)))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q", ErrInvalidLevel, o.Level)
		}
		level = l
	}
	if o.Verbose {
		level = log.DebugLevel
	}

	formatter, err := o.Format.formatter()
	if err != nil {
		return nil, nil, err
	}

	var closer io.Closer = nopCloser{}
	if path := strings.TrimSpace(o.File.Path); path != "" {
		file := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    o.File.MaxSizeMB,
			MaxBackups: o.File.MaxBackups,
			MaxAge:     o.File.MaxAgeDays,
			Compress:   o.File.Compress,
		}
		w = io.MultiWriter(w, file)
		closer = file
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		Prefix:          o.Prefix,
		ReportTimestamp: o.File.Path != "",
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func (f Format) formatter() (log.Formatter, error) {
	switch Format(strings.ToLower(string(f))) {
	case "", FormatText:
		return log.TextFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected text, json or logfmt)", ErrInvalidFormat, string(f))
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
