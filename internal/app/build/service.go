// SPDX-License-Identifier: MPL-2.0

package build

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jlinkrun/jlinkrun/internal/config"
	"github.com/jlinkrun/jlinkrun/internal/issue"
	"github.com/jlinkrun/jlinkrun/internal/runtime"
	"github.com/jlinkrun/jlinkrun/internal/toolchain"
	"github.com/jlinkrun/jlinkrun/pkg/buildfile"
	"github.com/jlinkrun/jlinkrun/pkg/jlink"
)

type (
	// Request describes one build.
	Request struct {
		// File is the build description; empty means config build.file, then discovery in Dir.
		File string
		// Dir is searched for a build description; empty means the working directory.
		Dir string
		// DryRun plans without executing. Config build.dry_run also enables it.
		DryRun bool
		// Jlink pins the executable, overriding jdk.executable.
		Jlink string
	}

	// Service runs builds.
	Service struct {
		cfg          *config.Config
		loader       *buildfile.Loader
		executor     runtime.Executor
		logger       *log.Logger
		resolverOpts []toolchain.Option
		newID        func() uuid.UUID
	}

	// Option configures a Service.
	Option func(*Service)
)

// WithConfig sets the application configuration; DefaultConfig is used otherwise.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) { s.cfg = cfg }
}

// WithLoader replaces the build description loader.
func WithLoader(l *buildfile.Loader) Option {
	return func(s *Service) { s.loader = l }
}

// WithExecutor replaces the native executor.
func WithExecutor(e runtime.Executor) Option {
	return func(s *Service) { s.executor = e }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithResolverOptions appends options to every toolchain resolver the service creates.
func WithResolverOptions(opts ...toolchain.Option) Option {
	return func(s *Service) { s.resolverOpts = append(s.resolverOpts, opts...) }
}

// NewService creates a Service.
func NewService(opts ...Option) *Service {
	s := &Service{newID: uuid.New}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg == nil {
		s.cfg = config.DefaultConfig()
	}
	if s.loader == nil {
		s.loader = buildfile.NewLoader()
	}
	if s.executor == nil {
		s.executor = runtime.NewNativeExecutor()
	}
	if s.logger == nil {
		s.logger = log.New(os.Stderr)
	}
	return s
}

// Run loads, plans and executes a build. The context only serves to interrupt
// a running jlink.
func (s *Service) Run(ctx context.Context, req Request) (*Report, error) {
	desc, err := s.load(req)
	if err != nil {
		return nil, err
	}

	id := s.newID()
	logger := s.logger.With("invocation", id.String())
	logger.Debug("loaded build description", "path", desc.Path(), "format", desc.Format())

	if desc.Skip {
		logger.Info("skipping jlink execution")
		return &Report{Outcome: OutcomeSkipped}, nil
	}

	plan, err := s.plan(desc, req, id, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("planned invocation", "command", plan.CommandLine(), "fingerprint", plan.Fingerprint())

	if req.DryRun || s.cfg.Build.DryRun {
		logger.Warn("dry-run mode, not executing jlink")
		return &Report{Outcome: OutcomeDryRun, Plan: plan}, nil
	}

	result := s.executor.Execute(ctx, plan.Invocation())
	runtime.Relay(logger, result)
	if execErr := runtime.NewExecutionError(result, plan.CommandLine()); execErr != nil {
		return &Report{Outcome: OutcomeExecuted, Plan: plan, Result: result}, issue.NewErrorContext().
			WithOperation("run jlink").
			WithIssue(issue.JlinkFailedId).
			WithSuggestions(failureSuggestions(execErr)...).
			Wrap(execErr).
			BuildError()
	}
	logger.Info("jlink finished", "duration", result.Duration)
	return &Report{Outcome: OutcomeExecuted, Plan: plan, Result: result}, nil
}

// Plan loads and validates a build without executing it or honoring skip.
func (s *Service) Plan(req Request) (*Plan, error) {
	desc, err := s.load(req)
	if err != nil {
		return nil, err
	}
	id := s.newID()
	return s.plan(desc, req, id, s.logger.With("invocation", id.String()))
}

func (s *Service) plan(desc *buildfile.Descriptor, req Request, id uuid.UUID, logger *log.Logger) (*Plan, error) {
	logger.Info("jlink options:")
	args, err := jlink.NewAssembler(
		jlink.WithBaseDir(desc.BaseDir()),
		jlink.WithReporter(func(line string) { logger.Info("  " + line) }),
	).Assemble(desc.Configuration())
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("assemble jlink options").
			WithResource(desc.Path()).
			WithIssue(issue.ConfigurationInvalidId).
			WithSuggestions(configurationSuggestions(err)...).
			Wrap(err).
			BuildError()
	}

	plan := &Plan{ID: id, BuildFile: desc.Path(), Args: args, Dir: desc.BaseDir()}

	explicit := strings.TrimSpace(req.Jlink)
	if explicit == "" {
		explicit = s.cfg.JDK.Executable
	}
	opts := []toolchain.Option{
		toolchain.WithExecutable(explicit),
		toolchain.WithToolchains(s.cfg.JDK.Toolchains),
		toolchain.WithJDKHome(s.cfg.JDK.Home),
		toolchain.WithLogger(logger),
	}
	res, err := toolchain.NewResolver(append(opts, s.resolverOpts...)...).Resolve(desc.Toolchain)
	switch {
	case err == nil:
		plan.Executable, plan.Source = res.Path, res.Source
		plan.JavaVersion = res.Version
		logger.Info("using", "jlink", res.Path, "source", res.Source)
	case req.DryRun || s.cfg.Build.DryRun:
		logger.Warn("jlink not found, planning with bare name", "err", err)
		plan.Executable = toolchain.Executable
	default:
		return nil, issue.NewErrorContext().
			WithOperation("locate jlink").
			WithIssue(issue.JlinkNotFoundId).
			WithSuggestion("Set JAVA_HOME to a JDK (not a JRE) installation").
			WithSuggestion("Set jdk.home or jdk.executable in the jlinkrun config").
			WithSuggestion("Pass --jlink with the path to the jlink executable").
			Wrap(err).
			BuildError()
	}
	return plan, nil
}

func (s *Service) load(req Request) (*buildfile.Descriptor, error) {
	path := strings.TrimSpace(req.File)
	if path == "" {
		path = strings.TrimSpace(s.cfg.Build.File)
	}
	if path == "" {
		dir := req.Dir
		if dir == "" {
			dir = "."
		}
		found, err := buildfile.Discover(dir)
		if err != nil {
			return nil, notFound(dir, err)
		}
		path = found
	} else if req.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(req.Dir, path)
	}

	desc, err := s.loader.Load(path)
	switch {
	case err == nil:
		return desc, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, notFound(path, errors.Join(buildfile.ErrNotFound, err))
	default:
		return nil, issue.NewErrorContext().
			WithOperation("load build description").
			WithResource(path).
			WithIssue(issue.BuildFileInvalidId).
			WithSuggestion("Fix the reported field and run again").
			WithSuggestion("Run 'jlinkrun options' to list the supported keys").
			Wrap(err).
			BuildError()
	}
}

func notFound(resource string, err error) error {
	return issue.NewErrorContext().
		WithOperation("find build description").
		WithResource(resource).
		WithIssue(issue.BuildFileNotFoundId).
		WithSuggestion("Run 'jlinkrun init' to create jlink.cue").
		WithSuggestion("Pass the file explicitly with --file").
		Wrap(err).
		BuildError()
}

func configurationSuggestions(err error) []string {
	var ce *jlink.ConfigurationError
	if !errors.As(err, &ce) {
		return nil
	}
	switch {
	case errors.Is(err, jlink.ErrMandatoryOption):
		key := ce.Option
		if o, ok := jlink.Lookup(ce.Option); ok {
			key = o.Key
		}
		return []string{"Set " + key + " in the build description"}
	case errors.Is(err, jlink.ErrPathNotFound):
		return []string{"Relative paths are resolved against the build description's directory"}
	default:
		return []string{"Run 'jlinkrun options' to see accepted values"}
	}
}

func failureSuggestions(err *runtime.ExecutionError) []string {
	if !err.Launched() {
		return []string{"Check that the resolved jlink is executable"}
	}
	return []string{
		"Run with --verbose to see the full jlink output",
		"Delete the output directory if it already exists; jlink refuses to overwrite it",
	}
}
