// SPDX-License-Identifier: MPL-2.0

package buildfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jlinkrun/jlinkrun/pkg/cueutil"
)

var (
	// ErrNotFound is returned by Discover when no build description exists.
	ErrNotFound = errors.New("no build description found")
	// ErrInvalid is wrapped by every decoding or validation failure.
	ErrInvalid = errors.New("invalid build description")
)

type (
	// Loader reads build descriptions. The zero value is not usable; create
	// one with NewLoader.
	Loader struct {
		env         map[string]string
		maxFileSize int64
	}

	// LoaderOption configures a Loader.
	LoaderOption func(*Loader)

	// ParseError reports a build description that could not be decoded.
	ParseError struct {
		Path   string
		Format Format
		Err    error
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Path != "" && !strings.HasPrefix(msg, e.Path) {
		return e.Path + ": " + msg
	}
	return msg
}

// Unwrap returns ErrInvalid and the underlying decoder error.
func (e *ParseError) Unwrap() []error { return []error{ErrInvalid, e.Err} }

// WithEnviron sets the environment, in os.Environ form, used for path
// expansion and the HCL env object. The default is the process environment.
func WithEnviron(environ []string) LoaderOption {
	return func(l *Loader) { l.env = environMap(environ) }
}

// WithMaxFileSize overrides the maximum accepted file size.
func WithMaxFileSize(n int64) LoaderOption {
	return func(l *Loader) { l.maxFileSize = n }
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{maxFileSize: cueutil.DefaultMaxFileSize}
	for _, opt := range opts {
		opt(l)
	}
	if l.env == nil {
		l.env = environMap(os.Environ())
	}
	return l
}

// Load is shorthand for NewLoader().Load(path).
func Load(path string) (*Descriptor, error) {
	return NewLoader().Load(path)
}

// Discover returns the first build description found in dir, trying each
// format's default file name in the order of Formats.
func Discover(dir string) (string, error) {
	candidates := []string{
		FormatCUE.FileName(),
		FormatTOML.FileName(),
		FormatYAML.FileName(),
		BaseName + ".yml",
		FormatHCL.FileName(),
	}
	for _, name := range candidates {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %s)", ErrNotFound, dir, strings.Join(candidates, ", "))
}

// Load reads and decodes the build description at path. The returned
// descriptor remembers its absolute path so BaseDir can resolve relative paths.
func (l *Loader) Load(path string) (*Descriptor, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve build description path %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read build description at %s: %w", path, err)
	}
	d, err := l.Parse(data, abs)
	if err != nil {
		return nil, err
	}
	d.path = abs
	return d, nil
}

// Parse decodes data, choosing the format from filename's extension.
// Path values are expanded but not resolved.
func (l *Loader) Parse(data []byte, filename string) (*Descriptor, error) {
	format, err := FormatForPath(filename)
	if err != nil {
		return nil, err
	}
	if err := cueutil.CheckFileSize(data, l.maxFileSize, filename); err != nil {
		return nil, &ParseError{Path: filename, Format: format, Err: err}
	}

	var d *Descriptor
	switch format {
	case FormatCUE:
		d, err = decodeCUE(data, filename, l.maxFileSize)
	case FormatTOML:
		d, err = decodeTOML(data)
	case FormatYAML:
		d, err = decodeYAML(data)
	case FormatHCL:
		d, err = decodeHCL(data, filename, l.evalContext())
	}
	if err != nil {
		return nil, &ParseError{Path: filename, Format: format, Err: err}
	}

	if err := l.expandPaths(d); err != nil {
		return nil, &ParseError{Path: filename, Format: format, Err: err}
	}
	d.format = format
	return d, nil
}

// Getenv returns the value of name in the loader's environment.
func (l *Loader) Getenv(name string) string { return l.env[name] }

func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		m[k] = v
	}
	return m
}
