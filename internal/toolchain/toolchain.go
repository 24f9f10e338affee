// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jlinkrun/jlinkrun/internal/logging"
	"github.com/jlinkrun/jlinkrun/pkg/platform"
)

// Executable is the bare name of the tool.
const Executable = "jlink"

// Source values, in resolution order.
const (
	SourceExplicit  Source = "explicit"
	SourceToolchain Source = "toolchain"
	SourceJDKHome   Source = "jdk.home"
	SourceJavaHome  Source = "JAVA_HOME"
	SourcePath      Source = "PATH"
)

// ErrNotFound is wrapped by every NotFoundError.
var ErrNotFound = errors.New("jlink executable not found")

type (
	// Source names where a resolved executable came from.
	Source string

	// Toolchain is a JDK installation registered in the application configuration.
	Toolchain struct {
		Version string `json:"version" mapstructure:"version"`
		Vendor  string `json:"vendor,omitempty" mapstructure:"vendor"`
		Home    string `json:"home" mapstructure:"home"`
	}

	// Resolution is a located executable.
	Resolution struct {
		Path   string
		Source Source
		// Home is the JDK home the executable belongs to; empty for PATH and explicit lookups.
		Home string
		// Version is JAVA_VERSION from Home's release file; empty when unknown.
		Version string
	}

	// NotFoundError lists every candidate that was tried.
	NotFoundError struct {
		Tried []string
	}

	// Resolver locates jlink. The zero value is not usable; call NewResolver.
	Resolver struct {
		executable string
		toolchains []Toolchain
		jdkHome    string
		goos       string
		getenv     func(string) string
		lookPath   func(string) (string, error)
		logger     *log.Logger
	}

	// Option configures a Resolver.
	Option func(*Resolver)
)

// WithExecutable pins the executable; no other candidate is tried.
func WithExecutable(path string) Option {
	return func(r *Resolver) { r.executable = strings.TrimSpace(path) }
}

// WithToolchains registers the configured toolchains.
func WithToolchains(tcs []Toolchain) Option {
	return func(r *Resolver) { r.toolchains = tcs }
}

// WithJDKHome sets the configured JDK home, tried before JAVA_HOME.
func WithJDKHome(home string) Option {
	return func(r *Resolver) { r.jdkHome = strings.TrimSpace(home) }
}

// WithGetenv replaces os.Getenv for JAVA_HOME lookups.
func WithGetenv(getenv func(string) string) Option {
	return func(r *Resolver) { r.getenv = getenv }
}

// WithLookPath replaces exec.LookPath for the PATH lookup.
func WithLookPath(lookPath func(string) (string, error)) Option {
	return func(r *Resolver) { r.lookPath = lookPath }
}

// WithLogger sets the logger receiving debug and warning messages.
func WithLogger(logger *log.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// NewResolver creates a Resolver for the current host.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve locates jlink. version selects a configured toolchain; empty means
// no preference.
func (r *Resolver) Resolve(version string) (Resolution, error) {
	var tried []string

	if r.executable != "" {
		if isFile(r.executable) {
			path, err := filepath.Abs(r.executable)
			if err != nil {
				return Resolution{}, fmt.Errorf("resolve %s: %w", r.executable, err)
			}
			return Resolution{Path: path, Source: SourceExplicit}, nil
		}
		return Resolution{}, &NotFoundError{Tried: []string{r.executable}}
	}

	if version = strings.TrimSpace(version); version != "" {
		if tc, ok := r.toolchain(version); ok {
			r.logger.Info("toolchain", "version", tc.Version, "vendor", tc.Vendor, "home", tc.Home)
			candidate := r.inHome(tc.Home)
			if isFile(candidate) {
				return r.inJDK(Resolution{Path: candidate, Source: SourceToolchain, Home: tc.Home}), nil
			}
			r.logger.Warn("jlink is not part of configured toolchain", "version", tc.Version)
			tried = append(tried, candidate)
		} else {
			r.logger.Warn("no configured toolchain matches", "version", version)
		}
	}

	homes := []struct {
		home   string
		source Source
	}{
		{r.jdkHome, SourceJDKHome},
		{strings.TrimSpace(r.getenv("JAVA_HOME")), SourceJavaHome},
	}
	for _, h := range homes {
		if h.home == "" {
			continue
		}
		candidate := r.inHome(h.home)
		r.logger.Debug("looking for jlink", "home", h.home, "source", h.source)
		if isFile(candidate) {
			return r.inJDK(Resolution{Path: candidate, Source: h.source, Home: h.home}), nil
		}
		r.logger.Warn("file does not exist", "path", candidate)
		tried = append(tried, candidate)
	}

	path, err := r.lookPath(Executable)
	if err == nil {
		return Resolution{Path: path, Source: SourcePath}, nil
	}
	tried = append(tried, Executable+" on PATH")
	return Resolution{}, &NotFoundError{Tried: tried}
}

func (r *Resolver) toolchain(version string) (Toolchain, bool) {
	for _, tc := range r.toolchains {
		if tc.Version == version {
			return tc, true
		}
	}
	// A major version matches the first toolchain of that line: "21" picks "21.0.2".
	for _, tc := range r.toolchains {
		if strings.HasPrefix(tc.Version, version+".") {
			return tc, true
		}
	}
	return Toolchain{}, false
}

// inJDK fills in the Java version of a home-based resolution. A JDK without a
// readable release file still resolves.
func (r *Resolver) inJDK(res Resolution) Resolution {
	version, err := ReleaseVersion(res.Home)
	if err != nil {
		r.logger.Debug("unknown JDK version", "home", res.Home, "err", err)
		return res
	}
	res.Version = version
	return res
}

func (r *Resolver) inHome(home string) string {
	return filepath.Join(home, "bin", platform.ExecutableName(r.goos, Executable))
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Tried) == 0 {
		return ErrNotFound.Error()
	}
	return fmt.Sprintf("%s (tried: %s)", ErrNotFound, strings.Join(e.Tried, ", "))
}

// Unwrap returns ErrNotFound for errors.Is checks.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }
