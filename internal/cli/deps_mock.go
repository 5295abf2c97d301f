package cli

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/ksyq12/passengerpane/internal/config"
	"github.com/ksyq12/passengerpane/internal/executor"
	"github.com/ksyq12/passengerpane/internal/input"
	"github.com/ksyq12/passengerpane/internal/output"
)

// MockConfigLoader is a test double for ConfigLoader
type MockConfigLoader struct {
	Cfg       *config.Config
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockConfigLoader) Load() (*config.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return m.Cfg, nil
}

func (m *MockConfigLoader) Save(cfg *config.Config) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Cfg = cfg
	return nil
}

// MockRootChecker is a test double for RootChecker
type MockRootChecker struct {
	IsRoot bool
	Calls  int
}

func (m *MockRootChecker) RequireRoot() error {
	m.Calls++
	if !m.IsRoot {
		return errRootRequired
	}
	return nil
}

// MockCommandRunner is a test double for CommandRunner
type MockCommandRunner struct {
	Calls        [][]string
	LookPathFunc func(file string) (string, error)
	RunFunc      func(name string, args ...string) error
	Err          error
}

func (m *MockCommandRunner) RunInteractive(name string, args ...string) error {
	m.Calls = append(m.Calls, append([]string{name}, args...))
	if m.RunFunc != nil {
		return m.RunFunc(name, args...)
	}
	return m.Err
}

func (m *MockCommandRunner) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return "/usr/bin/" + file, nil
}

// MockDependenciesBuilder helps create mock dependencies for tests
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a new MockDependenciesBuilder with sensible defaults
func NewMockDeps() *MockDependenciesBuilder {
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			ConfigLoader:  &MockConfigLoader{Cfg: config.New()},
			Executor:      &executor.MockExecutor{},
			CommandRunner: &MockCommandRunner{},
			RootChecker:   &MockRootChecker{IsRoot: true},
			StdinReader:   &input.Answers{"y\n"},
		},
	}
}

// WithConfig sets the config for the mock
func (b *MockDependenciesBuilder) WithConfig(cfg *config.Config) *MockDependenciesBuilder {
	b.deps.ConfigLoader = &MockConfigLoader{Cfg: cfg}
	return b
}

// WithConfigLoader sets a custom config loader
func (b *MockDependenciesBuilder) WithConfigLoader(loader ConfigLoader) *MockDependenciesBuilder {
	b.deps.ConfigLoader = loader
	return b
}

// WithExecutor sets the executor used by the installer and Apache
func (b *MockDependenciesBuilder) WithExecutor(exec executor.CommandExecutor) *MockDependenciesBuilder {
	b.deps.Executor = exec
	return b
}

// WithCommandRunner sets the runner for interactive commands
func (b *MockDependenciesBuilder) WithCommandRunner(runner CommandRunner) *MockDependenciesBuilder {
	b.deps.CommandRunner = runner
	return b
}

// WithRootAccess sets whether root access is available
func (b *MockDependenciesBuilder) WithRootAccess(isRoot bool) *MockDependenciesBuilder {
	b.deps.RootChecker = &MockRootChecker{IsRoot: isRoot}
	return b
}

// WithRootChecker sets a custom root checker
func (b *MockDependenciesBuilder) WithRootChecker(checker RootChecker) *MockDependenciesBuilder {
	b.deps.RootChecker = checker
	return b
}

// WithStdinInput sets the answers read from stdin
func (b *MockDependenciesBuilder) WithStdinInput(answers ...string) *MockDependenciesBuilder {
	a := input.Answers(answers)
	b.deps.StdinReader = &a
	return b
}

// Build returns the configured Dependencies
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}

// TestHelper provides utilities for CLI tests
type TestHelper struct {
	T interface {
		Helper()
		Cleanup(func())
		TempDir() string
		Fatalf(format string, args ...any)
	}
	OldDeps      *Dependencies
	Config       *config.Config
	MockExecutor *executor.MockExecutor
	MockRunner   *MockCommandRunner
	MockRoot     *MockRootChecker
	Output       *bytes.Buffer
}

// NewTestHelper installs mock dependencies backed by a temporary apps
// directory and hosts file, and captures command output.
func NewTestHelper(t interface {
	Helper()
	Cleanup(func())
	TempDir() string
	Fatalf(format string, args ...any)
}) *TestHelper {
	t.Helper()

	dir := t.TempDir()
	cfg := config.New()
	cfg.AppsDir = filepath.Join(dir, "passenger_pane_vhosts")
	cfg.HostsFile = filepath.Join(dir, "hosts")
	if err := os.MkdirAll(cfg.AppsDir, 0755); err != nil {
		t.Fatalf("failed to create apps dir: %v", err)
	}
	if err := os.WriteFile(cfg.HostsFile, []byte("127.0.0.1 localhost\n"), 0644); err != nil {
		t.Fatalf("failed to create hosts file: %v", err)
	}

	helper := &TestHelper{
		T:            t,
		OldDeps:      GetDeps(),
		Config:       cfg,
		MockExecutor: &executor.MockExecutor{},
		MockRunner:   &MockCommandRunner{},
		MockRoot:     &MockRootChecker{IsRoot: true},
		Output:       &bytes.Buffer{},
	}

	SetDeps(NewMockDeps().
		WithConfig(cfg).
		WithExecutor(helper.MockExecutor).
		WithCommandRunner(helper.MockRunner).
		WithRootChecker(helper.MockRoot).
		Build())

	output.SetOutput(helper.Output)
	jsonOutput = false

	t.Cleanup(func() {
		SetDeps(helper.OldDeps)
		output.SetOutput(nil)
		jsonOutput = false
	})

	return helper
}

// WriteApp writes a vhost file for host into the apps directory
func (h *TestHelper) WriteApp(host, path, env string, rewrite bool) string {
	h.T.Helper()

	content := "<VirtualHost *:80>\n" +
		"  ServerName " + host + "\n" +
		"  DocumentRoot \"" + path + "/public\"\n" +
		"  RailsEnv " + env + "\n"
	if rewrite {
		content += "  RailsAllowModRewrite on\n"
	}
	content += "</VirtualHost>\n"

	file := filepath.Join(h.Config.AppsDir, host+".vhost.conf")
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		h.T.Fatalf("failed to write vhost: %v", err)
	}
	return file
}

// SetStdin replaces the answers read by confirmation prompts
func (h *TestHelper) SetStdin(answers ...string) {
	a := input.Answers(answers)
	GetDeps().StdinReader = &a
}
