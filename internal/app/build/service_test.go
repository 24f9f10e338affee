// SPDX-License-Identifier: MPL-2.0

package build

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/jlinkrun/jlinkrun/internal/config"
	"github.com/jlinkrun/jlinkrun/internal/issue"
	"github.com/jlinkrun/jlinkrun/internal/runtime"
	"github.com/jlinkrun/jlinkrun/internal/runtime/mocks"
	"github.com/jlinkrun/jlinkrun/internal/testutil"
	"github.com/jlinkrun/jlinkrun/internal/toolchain"
	"github.com/jlinkrun/jlinkrun/pkg/types"
)

const minimalTOML = `output = "image"
add_modules = ["java.base", "java.logging"]
strip_debug = true
`

type fixture struct {
	dir      string
	jdk      testutil.FakeJDK
	executor *mocks.MockExecutor
	logs     *bytes.Buffer
}

func newFixture(t *testing.T, buildFile string) *fixture {
	t.Helper()

	dir := t.TempDir()
	if buildFile != "" {
		testutil.MustWriteFile(t, filepath.Join(dir, "jlink.toml"), buildFile)
	}
	return &fixture{
		dir:      dir,
		jdk:      testutil.WriteFakeJDK(t, filepath.Join(t.TempDir(), "jdk"), "21.0.2", ""),
		executor: mocks.NewMockExecutor(gomock.NewController(t)),
		logs:     &bytes.Buffer{},
	}
}

func (f *fixture) service(cfg *config.Config, javaHome string) *Service {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewService(
		WithConfig(cfg),
		WithExecutor(f.executor),
		WithLogger(log.New(f.logs)),
		WithResolverOptions(
			toolchain.WithGetenv(func(k string) string {
				if k == "JAVA_HOME" {
					return javaHome
				}
				return ""
			}),
			toolchain.WithLookPath(func(string) (string, error) { return "", exec.ErrNotFound }),
		),
	)
}

func TestService_Run_Executes(t *testing.T) {
	t.Parallel()

	f := newFixture(t, minimalTOML)
	wantArgs := []string{
		"--output", filepath.Join(f.dir, "image"),
		"--strip-debug",
		"--add-modules", "java.base,java.logging",
	}

	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv runtime.Invocation) *runtime.Result {
			if inv.Executable != f.jdk.Jlink || inv.Dir != f.dir {
				t.Errorf("invocation = %+v", inv)
			}
			if diff := cmp.Diff(wantArgs, inv.Args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
			return &runtime.Result{Started: true, Output: "image written\n"}
		})

	report, err := f.service(nil, f.jdk.Home).Run(context.Background(), Request{Dir: f.dir})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Outcome != OutcomeExecuted || report.Plan.Source != toolchain.SourceJavaHome {
		t.Errorf("report = %+v", report)
	}
	if report.Plan.BuildFile != filepath.Join(f.dir, "jlink.toml") {
		t.Errorf("BuildFile = %q", report.Plan.BuildFile)
	}

	logs := f.logs.String()
	for _, want := range []string{"jlink options:", "--add-modules java.base,java.logging", "--strip-debug", "image written", "invocation="} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs missing %q:\n%s", want, logs)
		}
	}
}

func TestService_Run_Skip(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "skip = true\n")
	report, err := f.service(nil, "").Run(context.Background(), Request{Dir: f.dir})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Outcome != OutcomeSkipped || report.Plan != nil {
		t.Errorf("report = %+v", report)
	}
	if !strings.Contains(f.logs.String(), "skipping jlink execution") {
		t.Errorf("logs = %s", f.logs.String())
	}
}

func TestService_Run_DryRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      func(dir string) Request
		cfg      func(*config.Config)
		javaHome bool
		wantExec string
	}{
		{
			name:     "flag",
			req:      func(dir string) Request { return Request{Dir: dir, DryRun: true} },
			javaHome: true,
		},
		{
			name:     "config",
			req:      func(dir string) Request { return Request{Dir: dir} },
			cfg:      func(c *config.Config) { c.Build.DryRun = true },
			javaHome: true,
		},
		{
			name:     "unresolved executable degrades to bare name",
			req:      func(dir string) Request { return Request{Dir: dir, DryRun: true} },
			wantExec: "jlink",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, minimalTOML)
			cfg := config.DefaultConfig()
			if tt.cfg != nil {
				tt.cfg(cfg)
			}
			javaHome := ""
			if tt.javaHome {
				javaHome = f.jdk.Home
			}

			report, err := f.service(cfg, javaHome).Run(context.Background(), tt.req(f.dir))
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if report.Outcome != OutcomeDryRun || report.Result != nil {
				t.Errorf("report = %+v", report)
			}
			wantExec := tt.wantExec
			if wantExec == "" {
				wantExec = f.jdk.Jlink
			}
			if report.Plan.Executable != wantExec {
				t.Errorf("Executable = %q, want %q", report.Plan.Executable, wantExec)
			}
			if !strings.Contains(f.logs.String(), "dry-run mode, not executing jlink") {
				t.Errorf("logs = %s", f.logs.String())
			}
		})
	}
}

func TestService_Run_ExplicitExecutable(t *testing.T) {
	t.Parallel()

	f := newFixture(t, minimalTOML)
	cfg := config.DefaultConfig()
	cfg.JDK.Executable = filepath.Join(f.dir, "configured-jlink")

	report, err := f.service(cfg, "").Run(context.Background(), Request{Dir: f.dir, DryRun: true, Jlink: f.jdk.Jlink})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Plan.Executable != f.jdk.Jlink || report.Plan.Source != toolchain.SourceExplicit {
		t.Errorf("plan = %+v", report.Plan)
	}
}

func TestService_Run_Toolchain(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "toolchain = \"21\"\n"+minimalTOML)
	cfg := config.DefaultConfig()
	cfg.JDK.Toolchains = []toolchain.Toolchain{{Version: "21.0.2", Home: f.jdk.Home}}

	report, err := f.service(cfg, "").Run(context.Background(), Request{Dir: f.dir, DryRun: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Plan.Source != toolchain.SourceToolchain {
		t.Errorf("Source = %q, want toolchain", report.Plan.Source)
	}
	if report.Plan.JavaVersion != "21.0.2" {
		t.Errorf("JavaVersion = %q, want 21.0.2", report.Plan.JavaVersion)
	}
}

func TestService_Run_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		buildFile string
		file      string
		javaHome  bool
		result    *runtime.Result
		wantIssue issue.Id
		wantCode  types.ExitCode
		wantMsg   string
	}{
		{
			name:      "no build description",
			wantIssue: issue.BuildFileNotFoundId,
			wantCode:  types.ExitConfigError,
			wantMsg:   "no build description found",
		},
		{
			name:      "explicit file missing",
			file:      "other.toml",
			wantIssue: issue.BuildFileNotFoundId,
			wantCode:  types.ExitConfigError,
		},
		{
			name:      "invalid build description",
			buildFile: "output = [\n",
			wantIssue: issue.BuildFileInvalidId,
			wantCode:  types.ExitConfigError,
		},
		{
			name:      "missing output",
			buildFile: "strip_debug = true\n",
			javaHome:  true,
			wantIssue: issue.ConfigurationInvalidId,
			wantCode:  types.ExitConfigError,
			wantMsg:   `mandatory parameter "--output"`,
		},
		{
			name:      "missing module path",
			buildFile: minimalTOML + "module_paths = [\"mods\"]\n",
			javaHome:  true,
			wantIssue: issue.ConfigurationInvalidId,
			wantCode:  types.ExitConfigError,
			wantMsg:   "does not exist",
		},
		{
			name:      "jlink not found",
			buildFile: minimalTOML,
			wantIssue: issue.JlinkNotFoundId,
			wantCode:  types.ExitEnvError,
		},
		{
			name:      "jlink exits non-zero",
			buildFile: minimalTOML,
			javaHome:  true,
			result:    &runtime.Result{Started: true, ExitCode: 4, ErrOutput: "Error: directory image already exists"},
			wantIssue: issue.JlinkFailedId,
			wantCode:  4,
			wantMsg:   "exit code: 4 - Error: directory image already exists",
		},
		{
			name:      "jlink cannot start",
			buildFile: minimalTOML,
			javaHome:  true,
			result:    &runtime.Result{ExitCode: types.ExitFailure, Error: errors.New("permission denied")},
			wantIssue: issue.JlinkFailedId,
			wantCode:  types.ExitFailure,
			wantMsg:   "error while executing jlink: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, tt.buildFile)
			if tt.result != nil {
				f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(tt.result)
			}
			javaHome := ""
			if tt.javaHome {
				javaHome = f.jdk.Home
			}

			_, err := f.service(nil, javaHome).Run(context.Background(), Request{Dir: f.dir, File: tt.file})
			if err == nil {
				t.Fatal("Run() succeeded, want error")
			}

			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error %T is not actionable: %v", err, err)
			}
			if ae.Issue != tt.wantIssue {
				t.Errorf("issue = %v, want %v", ae.Issue, tt.wantIssue)
			}
			if got := ExitCode(err); got != tt.wantCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.wantCode)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestService_Plan_FingerprintIsStable(t *testing.T) {
	t.Parallel()

	f := newFixture(t, minimalTOML)
	s := f.service(nil, f.jdk.Home)

	first, err := s.Plan(Request{Dir: f.dir})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	second, err := s.Plan(Request{Dir: f.dir})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if first.ID == second.ID {
		t.Error("each plan should get a fresh invocation ID")
	}
	if first.Fingerprint() != second.Fingerprint() || !strings.HasPrefix(first.Fingerprint(), "blake3:") {
		t.Errorf("fingerprints %q and %q", first.Fingerprint(), second.Fingerprint())
	}
	if !strings.Contains(first.CommandLine(), "--add-modules") {
		t.Errorf("CommandLine() = %q", first.CommandLine())
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	if ExitCode(nil) != types.ExitSuccess {
		t.Error("nil error should map to success")
	}
	if ExitCode(errors.New("boom")) != types.ExitFailure {
		t.Error("unknown errors should map to failure")
	}
	execErr := runtime.NewExecutionError(&runtime.Result{Started: true, ExitCode: 300}, "jlink")
	if ExitCode(execErr) != types.ExitFailure {
		t.Error("out of range exit status should map to failure")
	}
	if ExitCode(&toolchain.NotFoundError{}) != types.ExitEnvError {
		t.Error("missing jlink should map to the environment error code")
	}
}
