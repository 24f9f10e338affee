// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/jlinkrun/jlinkrun/internal/app/build"
	"github.com/jlinkrun/jlinkrun/internal/config"
	"github.com/jlinkrun/jlinkrun/internal/issue"
	"github.com/jlinkrun/jlinkrun/internal/logging"
	"github.com/jlinkrun/jlinkrun/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: every Cobra handler receives the App and goes through it
	// for configuration, logging and builds.
	App struct {
		Config          ConfigProvider
		NewBuildService BuildServiceFactory
		stdout          io.Writer
		stderr          io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config          ConfigProvider
		NewBuildService BuildServiceFactory
		Stdout          io.Writer
		Stderr          io.Writer
	}

	// ConfigProvider loads configuration and reports the file it came from.
	ConfigProvider interface {
		LoadWithSource(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}

	// BuildService runs one build.
	BuildService interface {
		Run(ctx context.Context, req build.Request) (*build.Report, error)
	}

	// BuildServiceFactory creates a BuildService for the loaded configuration.
	BuildServiceFactory func(cfg *config.Config, logger *log.Logger) BuildService

	// globalFlags are the persistent root flags.
	globalFlags struct {
		verbose    bool
		configFile string
	}

	// session is the per-command state derived from the global flags.
	session struct {
		cfg     *config.Config
		source  string
		logger  *log.Logger
		verbose bool
		closer  io.Closer
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.NewBuildService == nil {
		deps.NewBuildService = func(cfg *config.Config, logger *log.Logger) BuildService {
			return build.NewService(build.WithConfig(cfg), build.WithLogger(logger))
		}
	}
	return &App{
		Config:          deps.Config,
		NewBuildService: deps.NewBuildService,
		stdout:          deps.Stdout,
		stderr:          deps.Stderr,
	}
}

// open loads the configuration and builds the logger. Errors are reported
// before they are returned.
func (a *App) open(ctx context.Context, flags *globalFlags) (*session, error) {
	cfg, source, err := a.Config.LoadWithSource(ctx, config.LoadOptions{ConfigFilePath: flags.configFile})
	if err != nil {
		return nil, a.fail(err, types.ExitConfigError, flags.verbose, config.ColorSchemeAuto)
	}

	verbose := flags.verbose || cfg.UI.Verbose
	logger, closer, err := logging.New(a.stderr, cfg.Log.Options(verbose))
	if err != nil {
		return nil, a.fail(err, types.ExitConfigError, verbose, cfg.UI.ColorScheme)
	}
	if source != "" {
		logger.Debug("loaded configuration", "path", source)
	}
	return &session{cfg: cfg, source: source, logger: logger, verbose: verbose, closer: closer}, nil
}

func (s *session) close() {
	if err := s.closer.Close(); err != nil {
		s.logger.Warn("failed to close log file", "err", err)
	}
}

// fail reports err on stderr and returns an ExitError carrying code. In
// verbose mode the matching issue guide is rendered as well.
func (a *App) fail(err error, code types.ExitCode, verbose bool, scheme config.ColorScheme) error {
	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	var ae *issue.ActionableError
	if verbose && errors.As(err, &ae) && ae.Issue != 0 {
		if guide := issue.Get(ae.Issue); guide != nil {
			if rendered, renderErr := guide.Render(glamourStyle(scheme)); renderErr == nil {
				fmt.Fprint(a.stderr, rendered)
			}
		}
	}
	return &ExitError{Code: code}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
