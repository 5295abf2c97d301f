package cli

import (
	"os"
	"os/exec"

	"github.com/ksyq12/passengerpane/internal/config"
	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/executor"
	"github.com/ksyq12/passengerpane/internal/input"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	ConfigLoader  ConfigLoader
	Executor      executor.CommandExecutor
	CommandRunner CommandRunner
	RootChecker   RootChecker
	StdinReader   input.Reader
}

// ConfigLoader handles configuration loading
type ConfigLoader interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
}

// RootChecker checks root privileges
type RootChecker interface {
	RequireRoot() error
}

// CommandRunner runs commands attached to the terminal (editor, tail)
type CommandRunner interface {
	RunInteractive(name string, args ...string) error
	LookPath(file string) (string, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	ConfigLoader:  &realConfigLoader{},
	Executor:      executor.NewSystemExecutor(),
	CommandRunner: &realCommandRunner{},
	RootChecker:   &realRootChecker{},
	StdinReader:   input.Stdin(),
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

type realConfigLoader struct{}

func (r *realConfigLoader) Load() (*config.Config, error) {
	return config.Load()
}

func (r *realConfigLoader) Save(cfg *config.Config) error {
	return cfg.Save()
}

type realRootChecker struct{}

func (r *realRootChecker) RequireRoot() error {
	if os.Geteuid() != 0 {
		return errRootRequired
	}
	return nil
}

type realCommandRunner struct{}

func (r *realCommandRunner) RunInteractive(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *realCommandRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

var errRootRequired = &apperrors.AppError{
	Code:    apperrors.ErrCodePermission,
	Message: "this operation requires root privileges. Please run with sudo",
}
